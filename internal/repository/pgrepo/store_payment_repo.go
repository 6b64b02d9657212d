package pgrepo

import (
	"context"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

const storePaymentColumns = `id, created_at, updated_at, store_id, amount, reference,
	origin_account_id, usd_exchange_rate`

// StorePaymentRepository хранит выплаты магазинам.
type StorePaymentRepository struct {
	conn uow.DBTX
}

func NewStorePaymentRepository(conn uow.DBTX) *StorePaymentRepository {
	return &StorePaymentRepository{conn: conn}
}

// Create записывает выплату, выдавая ей следующий сквозной reference. Номер
// считается внутри INSERT, поэтому при конкурентных выплатах дубликат
// номера упрется в уникальный индекс и вернет ErrDuplicateKey.
func (r *StorePaymentRepository) Create(
	ctx context.Context,
	args repoargs.CreateStorePayment,
) (*domain.StorePayment, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO store_payments (store_id, amount, reference, origin_account_id, usd_exchange_rate)
		 VALUES ($1, $2, (SELECT COALESCE(MAX(reference), 0) + 1 FROM store_payments), $3, $4)
		 RETURNING `+storePaymentColumns,
		args.StoreID, args.Amount, args.OriginAccountID, args.Rate,
	)
	payment, err := scanStorePayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment for store %d", args.StoreID)
	}
	return payment, nil
}

func (r *StorePaymentRepository) GetByID(ctx context.Context, id int64) (*domain.StorePayment, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+storePaymentColumns+` FROM store_payments WHERE id = $1`, id)
	payment, err := scanStorePayment(row)
	if err != nil {
		return nil, convertErr(err, "getting store payment %d", id)
	}
	return payment, nil
}

func (r *StorePaymentRepository) List(ctx context.Context, storeID *int64, limit uint) ([]domain.StorePayment, error) {
	if limit == 0 || limit > 1000 {
		limit = 100
	}
	rows, err := r.conn.Query(ctx,
		`SELECT `+storePaymentColumns+` FROM store_payments
		 WHERE $1::bigint IS NULL OR store_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT `+itoa(limit),
		storeID,
	)
	if err != nil {
		return nil, convertErr(err, "listing store payments")
	}
	defer rows.Close()

	var payments []domain.StorePayment
	for rows.Next() {
		payment, scanErr := scanStorePayment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning store payment")
		}
		payments = append(payments, *payment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing store payments")
	}
	return payments, nil
}

func scanStorePayment(row rowScanner) (*domain.StorePayment, error) {
	var p domain.StorePayment
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.StoreID, &p.Amount, &p.Reference,
		&p.OriginAccountID, &p.Rate,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

const purchaseColumns = `id, created_at, updated_at, customer_id, store_id, gift_recipient_id,
	amount, commission_percentage, status, gift_expires_at, store_payment_id`

// PurchaseRepository хранит покупки-подарки.
type PurchaseRepository struct {
	conn uow.DBTX
}

func NewPurchaseRepository(conn uow.DBTX) *PurchaseRepository {
	return &PurchaseRepository{conn: conn}
}

func (r *PurchaseRepository) Create(
	ctx context.Context,
	args repoargs.CreatePurchase,
) (*domain.Purchase, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO purchases (customer_id, store_id, gift_recipient_id, amount,
		                        commission_percentage, status, gift_expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+purchaseColumns,
		args.CustomerID, args.StoreID, args.GiftRecipientID, args.Amount,
		args.CommissionPercentage, string(domain.PurchaseStatusPending), args.GiftExpiresAt,
	)
	p, err := scanPurchase(row)
	if err != nil {
		return nil, convertErr(err, "creating purchase for customer %d", args.CustomerID)
	}
	return p, nil
}

func (r *PurchaseRepository) GetByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id)
	p, err := scanPurchase(row)
	if err != nil {
		return nil, convertErr(err, "getting purchase %d", id)
	}
	return p, nil
}

// GetByIDForUpdate читает покупку с блокировкой строки. Вызывается только
// внутри транзакции.
func (r *PurchaseRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Purchase, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1 FOR UPDATE`, id)
	p, err := scanPurchase(row)
	if err != nil {
		return nil, convertErr(err, "locking purchase %d", id)
	}
	return p, nil
}

func (r *PurchaseRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.PurchaseStatus,
) (*domain.Purchase, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE purchases SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+purchaseColumns,
		id, string(status),
	)
	p, err := scanPurchase(row)
	if err != nil {
		return nil, convertErr(err, "updating purchase %d status", id)
	}
	return p, nil
}

// ListUnpaidDeliveredForUpdate выбирает доставленные и еще не оплаченные
// магазину покупки с блокировкой строк. Расчет выплаты строится по этому
// набору, поэтому до конца транзакции его не должны менять конкуренты.
func (r *PurchaseRepository) ListUnpaidDeliveredForUpdate(
	ctx context.Context,
	storeID int64,
) ([]domain.Purchase, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchases
		 WHERE store_id = $1 AND status = $2 AND store_payment_id IS NULL
		 ORDER BY id
		 FOR UPDATE`,
		storeID, string(domain.PurchaseStatusDelivered),
	)
	if err != nil {
		return nil, convertErr(err, "listing unpaid purchases of store %d", storeID)
	}
	defer rows.Close()
	return collectPurchases(rows, storeID)
}

// AttachToPayment привязывает покупки к выплате и возвращает число затронутых
// строк. Несовпадение с ожидаемым числом означает гонку и должно откатывать
// транзакцию.
func (r *PurchaseRepository) AttachToPayment(
	ctx context.Context,
	purchaseIDs []int64,
	paymentID int64,
) (int64, error) {
	tag, err := r.conn.Exec(ctx,
		`UPDATE purchases SET store_payment_id = $2, updated_at = now()
		 WHERE id = ANY($1) AND store_payment_id IS NULL`,
		purchaseIDs, paymentID,
	)
	if err != nil {
		return 0, convertErr(err, "attaching purchases to payment %d", paymentID)
	}
	return tag.RowsAffected(), nil
}

// ListExpiredPending возвращает покупки-подарки, которые так и не были
// приняты до истечения срока. Принятые подарки под истечение не попадают.
func (r *PurchaseRepository) ListExpiredPending(
	ctx context.Context,
	now time.Time,
) ([]domain.Purchase, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchases
		 WHERE gift_recipient_id IS NOT NULL
		   AND gift_expires_at <= $1
		   AND status = $2
		 ORDER BY id`,
		now,
		string(domain.PurchaseStatusPending),
	)
	if err != nil {
		return nil, convertErr(err, "listing expired gifts")
	}
	defer rows.Close()
	return collectPurchases(rows, 0)
}

func collectPurchases(rows pgx.Rows, storeID int64) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, convertErr(err, "scanning purchase")
		}
		purchases = append(purchases, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "collecting purchases of store %d", storeID)
	}
	return purchases, nil
}

func scanPurchase(row rowScanner) (*domain.Purchase, error) {
	var p domain.Purchase
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.CustomerID, &p.StoreID, &p.GiftRecipientID,
		&p.Amount, &p.CommissionPercentage, &p.Status, &p.GiftExpiresAt, &p.StorePaymentID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

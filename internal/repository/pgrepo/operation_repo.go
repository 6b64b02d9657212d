package pgrepo

import (
	"context"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// operationColumns операция вместе с колонками обоих счетов: производные
// суммы операции зависят от валют счетов, поэтому счета подгружаются всегда.
const operationColumns = `
	o.id, o.created_at, o.updated_at, o.amount, o.usd_exchange_rate, o.commission,
	orig.id, orig.created_at, orig.updated_at, orig.name, orig.currency, orig.balance,
	dest.id, dest.created_at, dest.updated_at, dest.name, dest.currency, dest.balance`

const operationJoins = `
	FROM fund_operations o
	LEFT JOIN fund_accounts orig ON orig.id = o.origin_account_id
	LEFT JOIN fund_accounts dest ON dest.id = o.destination_account_id`

// OperationRepository хранит административные операции с деньгами.
type OperationRepository struct {
	conn uow.DBTX
}

func NewOperationRepository(conn uow.DBTX) *OperationRepository {
	return &OperationRepository{conn: conn}
}

func (r *OperationRepository) Create(
	ctx context.Context,
	args repoargs.CreateOperation,
) (*domain.FundOperation, error) {
	var id int64
	err := r.conn.QueryRow(ctx,
		`INSERT INTO fund_operations (amount, origin_account_id, destination_account_id, usd_exchange_rate, commission)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		args.Amount, args.OriginAccountID, args.DestinationAccountID, args.Rate, args.Commission,
	).Scan(&id)
	if err != nil {
		return nil, convertErr(err, "creating fund operation")
	}
	return r.GetByID(ctx, id)
}

func (r *OperationRepository) GetByID(ctx context.Context, id int64) (*domain.FundOperation, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+operationColumns+operationJoins+` WHERE o.id = $1`, id)
	op, err := scanOperation(row)
	if err != nil {
		return nil, convertErr(err, "getting fund operation %d", id)
	}
	return op, nil
}

func (r *OperationRepository) List(ctx context.Context, limit uint) ([]domain.FundOperation, error) {
	if limit == 0 || limit > 1000 {
		limit = 100
	}
	rows, err := r.conn.Query(ctx,
		`SELECT `+operationColumns+operationJoins+` ORDER BY o.created_at DESC, o.id DESC LIMIT `+itoa(limit))
	if err != nil {
		return nil, convertErr(err, "listing fund operations")
	}
	defer rows.Close()

	var operations []domain.FundOperation
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning fund operation")
		}
		operations = append(operations, *op)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing fund operations")
	}
	return operations, nil
}

func scanOperation(row rowScanner) (*domain.FundOperation, error) {
	var op domain.FundOperation
	var orig, dest nullableAccount
	err := row.Scan(
		&op.ID, &op.CreatedAt, &op.UpdatedAt, &op.Amount, &op.Rate, &op.Commission,
		&orig.id, &orig.createdAt, &orig.updatedAt, &orig.name, &orig.currency, &orig.balance,
		&dest.id, &dest.createdAt, &dest.updatedAt, &dest.name, &dest.currency, &dest.balance,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	op.OriginAccount = orig.toDomain()
	op.DestinationAccount = dest.toDomain()
	return &op, nil
}

package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

const customerColumns = `id, created_at, updated_at, username, balance`

// CustomerRepository хранит клиентов и их балансы.
type CustomerRepository struct {
	conn uow.DBTX
}

func NewCustomerRepository(conn uow.DBTX) *CustomerRepository {
	return &CustomerRepository{conn: conn}
}

func (r *CustomerRepository) Create(
	ctx context.Context,
	args repoargs.CreateCustomer,
) (*domain.Customer, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO customers (username, balance)
		 VALUES ($1, $2)
		 RETURNING `+customerColumns,
		args.Username, args.Balance,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer %s", args.Username)
	}
	return customer, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "getting customer %d", id)
	}
	return customer, nil
}

// GetByIDForUpdate читает клиента с блокировкой строки для последующего
// изменения баланса.
func (r *CustomerRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1 FOR UPDATE`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "locking customer %d", id)
	}
	return customer, nil
}

// UpdateBalance записывает новый баланс клиента. Ограничения те же, что у
// AccountRepository.UpdateBalance.
func (r *CustomerRepository) UpdateBalance(
	ctx context.Context,
	id int64,
	balance decimal.Decimal,
) (*domain.Customer, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE customers SET balance = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+customerColumns,
		id, balance,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "updating balance of customer %d", id)
	}
	return customer, nil
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Username, &c.Balance); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}

package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

const accountColumns = `id, created_at, updated_at, name, currency, balance`

// AccountRepository хранит административные счета компании.
type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

func (r *AccountRepository) Create(
	ctx context.Context,
	args repoargs.CreateAccount,
) (*domain.FundAccount, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO fund_accounts (name, currency, balance)
		 VALUES ($1, $2, $3)
		 RETURNING `+accountColumns,
		args.Name, string(args.Currency), args.Balance,
	)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating fund account %s", args.Name)
	}
	return acc, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.FundAccount, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM fund_accounts WHERE id = $1`, id)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "getting fund account %d", id)
	}
	return acc, nil
}

// GetByIDForUpdate читает счет с блокировкой строки. Вызывается только внутри
// транзакции; конкурентные операции над одним счетом сериализуются на этой
// блокировке.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.FundAccount, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM fund_accounts WHERE id = $1 FOR UPDATE`, id)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking fund account %d", id)
	}
	return acc, nil
}

func (r *AccountRepository) GetByName(ctx context.Context, name string) (*domain.FundAccount, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM fund_accounts WHERE lower(name) = lower($1)`, name)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "getting fund account %q", name)
	}
	return acc, nil
}

// GetByNameForUpdate вариант GetByName с блокировкой строки.
func (r *AccountRepository) GetByNameForUpdate(ctx context.Context, name string) (*domain.FundAccount, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM fund_accounts WHERE lower(name) = lower($1) FOR UPDATE`, name)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking fund account %q", name)
	}
	return acc, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.FundAccount, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+accountColumns+` FROM fund_accounts ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing fund accounts")
	}
	defer rows.Close()

	var accounts []domain.FundAccount
	for rows.Next() {
		acc, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning fund account")
		}
		accounts = append(accounts, *acc)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing fund accounts")
	}
	return accounts, nil
}

// UpdateBalance записывает новый баланс счета. Счет должен быть предварительно
// заблокирован через GetByIDForUpdate, баланс - проверен сервисом; уход в
// минус отсекается CHECK-ограничением и вернется как ConsistencyError.
func (r *AccountRepository) UpdateBalance(
	ctx context.Context,
	id int64,
	balance decimal.Decimal,
) (*domain.FundAccount, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE fund_accounts SET balance = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+accountColumns,
		id, balance,
	)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "updating balance of fund account %d", id)
	}
	return acc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.FundAccount, error) {
	var acc domain.FundAccount
	var currency string
	err := row.Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt, &acc.Name, &currency, &acc.Balance)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	acc.Currency = domain.Currency(currency)
	return &acc, nil
}

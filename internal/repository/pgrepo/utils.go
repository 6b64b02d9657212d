package pgrepo

import (
	"database/sql"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
)

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

// nullableAccount приемник для счета из LEFT JOIN, где все колонки могут
// оказаться NULL.
type nullableAccount struct {
	id        sql.NullInt64
	createdAt sql.NullTime
	updatedAt sql.NullTime
	name      sql.NullString
	currency  sql.NullString
	balance   decimal.NullDecimal
}

func (a nullableAccount) toDomain() *domain.FundAccount {
	if !a.id.Valid {
		return nil
	}
	return &domain.FundAccount{
		ID:        a.id.Int64,
		CreatedAt: a.createdAt.Time,
		UpdatedAt: a.updatedAt.Time,
		Name:      a.name.String,
		Currency:  domain.Currency(a.currency.String),
		Balance:   a.balance.Decimal,
	}
}

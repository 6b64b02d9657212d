package repoargs

import (
	"github.com/giftbar/ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateAccount struct {
	Name     string
	Currency domain.Currency
	Balance  decimal.Decimal
}

type CreateCustomer struct {
	Username string
	Balance  decimal.Decimal
}

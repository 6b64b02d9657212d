package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ValidationError ошибка валидации входных данных, исправимая на стороне
// вызывающего. Field указывает на поле, из-за которого операция отклонена.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// AmountMismatchError возвращается при попытке выплатить магазину сумму, не
// совпадающую с расчетным остатком на момент проверки.
type AmountMismatchError struct {
	StoreID   int64
	Requested decimal.Decimal
	Owed      decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf(
		"payout amount %s does not match the current owed amount %s for store %d",
		e.Requested.StringFixed(2),
		e.Owed.StringFixed(2),
		e.StoreID,
	)
}

// ConsistencyError сигнализирует о нарушении инварианта, которое не должно
// происходить при корректной работе конкурентного контроля (отрицательный
// баланс после коммита, коллизия grouping id). Не глотается и не ретраится,
// всегда поднимается до операторского лога.
type ConsistencyError struct {
	Invariant string
	Details   string
}

func NewConsistencyError(invariant, details string) error {
	return &ConsistencyError{Invariant: invariant, Details: details}
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency violation [%s]: %s", e.Invariant, e.Details)
}

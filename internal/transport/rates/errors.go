package rates

import (
	"errors"
	"fmt"
)

// ErrQuoteUnavailable общий маркер недоступности котировки. Все ошибки
// FetchRate оборачивают его, решение о повторе остается за вызывающим.
var ErrQuoteUnavailable = errors.New("quote unavailable")

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

func (e *StatusCodeError) Unwrap() error {
	return ErrQuoteUnavailable
}

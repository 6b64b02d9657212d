package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"

	"github.com/giftbar/ledger/internal/domain"
)

// validateCurrency проверяет, что поле содержит один из поддерживаемых кодов
// валют.
func validateCurrency(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return domain.Currency(str).Valid()
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("currency", validateCurrency); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}

package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/giftbar/ledger/internal/domain"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusPaymentRequired:
		return "insufficient funds"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	default:
		return "internal server error"
	}
}

// domainErrorStatus отображает таксономию доменных ошибок на http статусы.
// Ошибки валидации исправимы на стороне клиента, нарушение консистентности -
// нет, оно всегда уходит в операторский лог как 500.
func domainErrorStatus(err error) int {
	var validationErr *domain.ValidationError
	var mismatchErr *domain.AmountMismatchError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &mismatchErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Errors замыкающий middleware обработки ошибок. Хендлеры кладут ошибку через
// c.Error и не выбирают статус для доменных ошибок самостоятельно.
func Errors(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = domainErrorStatus(firstErr.Err)
		}

		var msg string
		switch {
		case firstErr.IsType(gin.ErrorTypePublic):
			msg = firstErr.Error()
		case status == http.StatusUnprocessableEntity:
			msg = firstErr.Error()
		default:
			msg = statusErrorText(status)
		}

		if status >= http.StatusInternalServerError && l != nil {
			l.WithError(firstErr.Err).WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("request failed")
		}

		// тело могло быть сформировано раньше, например в auth middleware
		if c.Writer.Size() > 0 {
			return
		}

		c.JSON(status, gin.H{"error": msg})
		c.Abort()
	}
}

package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftbar/ledger/internal/transport/api/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан, вернется
// ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) error {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return ErrTokenNotExist
	}

	tokenStr := tokenHeader[len(bearer):]
	if _, err := tokens.ValidateAdminJWT(tokenStr, jwtTokenSecret); err != nil {
		return fmt.Errorf("check authorization: %w", err)
	}
	return nil
}

// AdminRequired проверяет, что запрос авторизован токеном оператора.
func AdminRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checkAuthorization(c, jwtTokenSecret); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Next()
	}
}

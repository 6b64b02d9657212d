package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/giftbar/ledger/internal/service/psswd"
	"github.com/giftbar/ledger/internal/transport/api/tokens"
)

const defaultTokenTTL = 24 * time.Hour

type AuthHandler struct {
	passwordHash string
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewAuthHandler(passwordHash string, jwtSecret []byte, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthHandler{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

type AdminLoginParams struct {
	Password string `binding:"required,min=6,max=255" json:"password"`
}

// Login POST RouteGroup + AdminLoginRoute. Аутентификация оператора по паролю.
func (h *AuthHandler) Login(c *gin.Context) {
	var params AdminLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	if !psswd.Compare(params.Password, h.passwordHash) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := tokens.GenerateAdminJWT(h.tokenTTL, h.jwtSecret)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Package tokens выпускает и проверяет JWT административной панели.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminSubject = "admin"

type AdminClaims struct {
	jwt.RegisteredClaims
}

func GenerateAdminJWT(expire time.Duration, key []byte) (string, error) {
	adminClaims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
	}
	token, err := generateJWT(adminClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating admin jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateAdminJWT(tokenString string, key []byte) (*jwt.Token, error) {
	token, err := validateJWT(tokenString, new(AdminClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating admin jwt token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims.Subject != adminSubject {
		return nil, errors.New("invalid claims")
	}
	return token, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}

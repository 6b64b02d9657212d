// Package psswd проверка пароля оператора против bcrypt-хеша из конфигурации.
package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash хеширует пароль. Используется утилитами подготовки конфигурации,
// само приложение хранит только готовый хеш.
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

// Compare сверяет пароль с хешем.
func Compare(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

package entities

import (
	"errors"
	"fmt"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicateKey = errors.New("username or email already taken")
)

// User представляет основную сущность домена пользователя.
// Email и PasswordHash никогда не сериализуются наружу.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"-"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StoreError переносит код ошибки хранилища, не раскрывая деталей реализации.
type StoreError struct {
	Code string
	Err  error
}

// Error возвращает текстовое представление ошибки.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store error code %s: %v", e.Code, e.Err)
}

// Unwrap возвращает исходную ошибку хранилища.
func (e *StoreError) Unwrap() error {
	return e.Err
}

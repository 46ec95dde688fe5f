// Package services определяет интерфейсы внешних возможностей ядра.
package services

import "context"

// PasswordService определяет интерфейс для хэширования паролей.
type PasswordService interface {
	// Hash возвращает солёный односторонний хэш пароля.
	Hash(ctx context.Context, password string) (string, error)

	// Verify сравнивает пароль с хэшем; неверный пароль - это (false, nil),
	// а не ошибка.
	Verify(ctx context.Context, password, hash string) (bool, error)
}

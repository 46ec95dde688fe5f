// Package api определяет интерфейсы прикладного слоя, открытые границе HTTP.
package api

import (
	"context"

	"goforum/internal/forum/domain/entities"
)

// AuthUseCase - операции аутентификации и восстановления пароля.
// Идентификатор сессии выдается границей; ядро лишь связывает его
// с пользователем в хранилище сессий.
//
// Ожидаемые бизнес-отказы (дубликат имени, неверный пароль, истекший
// токен) возвращаются внутри UserResponse; error зарезервирован для
// инфраструктурных сбоев.
type AuthUseCase interface {
	Register(ctx context.Context, sessionID, username, email, password string) (*entities.UserResponse, error)

	Login(ctx context.Context, sessionID, usernameOrEmail, password string) (*entities.UserResponse, error)

	// Logout уничтожает сессию. Результат false означает сбой хранилища;
	// очистка клиентской cookie выполняется границей в любом случае.
	Logout(ctx context.Context, sessionID string) bool

	// Me возвращает текущего пользователя либо nil, если сессии нет
	// или пользователь был удален.
	Me(ctx context.Context, sessionID string) (*entities.User, error)

	// ForgotPassword всегда возвращает true для неизвестного email,
	// чтобы не раскрывать наличие учетной записи.
	ForgotPassword(ctx context.Context, email string) (bool, error)

	ChangePassword(ctx context.Context, sessionID, token, newPassword string) (*entities.UserResponse, error)
}

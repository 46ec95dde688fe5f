// Package cache определяет интерфейсы для серверных сессий и токенов сброса пароля.
package cache

import "context"

// SessionStore хранит серверные сессии по непрозрачному идентификатору.
type SessionStore interface {
	// Create связывает идентификатор сессии с пользователем.
	Create(ctx context.Context, sessionID string, userID int64) error

	// Read возвращает userID сессии; false, если сессия отсутствует или истекла.
	Read(ctx context.Context, sessionID string) (int64, bool, error)

	// Destroy удаляет сессию. Удаление несуществующей сессии не является ошибкой.
	Destroy(ctx context.Context, sessionID string) error
}

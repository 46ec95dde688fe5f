package cache

import "context"

// ResetTokenStore хранит одноразовые токены сброса пароля.
// У одного пользователя может быть несколько действующих токенов.
type ResetTokenStore interface {
	// Issue генерирует криптографически случайный токен и сохраняет
	// связь token -> userID с ограниченным временем жизни.
	Issue(ctx context.Context, userID int64) (string, error)

	// Consume атомарно читает и удаляет токен; false, если токен
	// отсутствует или истек. Повторное использование токена невозможно
	// даже при конкурентных запросах.
	Consume(ctx context.Context, token string) (int64, bool, error)
}

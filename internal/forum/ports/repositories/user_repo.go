package repositories

import (
	"context"

	"goforum/internal/forum/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
type UserRepository interface {
	// FindByID находит пользователя по идентификатору.
	FindByID(ctx context.Context, id int64) (*entities.User, error)

	// FindByUsernameOrEmail ищет по email, если значение содержит '@',
	// иначе по имени пользователя. Частичных совпадений нет.
	FindByUsernameOrEmail(ctx context.Context, value string) (*entities.User, error)

	// FindByEmail ищет строго по колонке email независимо от формы значения.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// Create атомарно создает пользователя. Нарушение уникальности
	// username/email возвращается как entities.ErrDuplicateKey.
	Create(ctx context.Context, username, email, passwordHash string) (*entities.User, error)

	// UpdatePassword обновляет хэш пароля и updated_at одной записью.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

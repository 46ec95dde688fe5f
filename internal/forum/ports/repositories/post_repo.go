package repositories

import (
	"context"

	"goforum/internal/forum/domain/entities"
)

// PostRepository определяет интерфейс для операций с постами.
type PostRepository interface {
	Create(ctx context.Context, title string) (*entities.Post, error)

	FindByID(ctx context.Context, id int64) (*entities.Post, error)

	FindAll(ctx context.Context) ([]entities.Post, error)

	UpdateTitle(ctx context.Context, id int64, title string) (*entities.Post, error)

	Delete(ctx context.Context, id int64) error
}

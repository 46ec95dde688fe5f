package api

import (
	"context"

	"goforum/internal/forum/domain/entities"
)

// PostUseCase - операции над постами форума.
type PostUseCase interface {
	CreatePost(ctx context.Context, title string) (*entities.Post, error)

	GetPost(ctx context.Context, id int64) (*entities.Post, error)

	ListPosts(ctx context.Context) ([]entities.Post, error)

	UpdatePost(ctx context.Context, id int64, title string) (*entities.Post, error)

	DeletePost(ctx context.Context, id int64) error
}

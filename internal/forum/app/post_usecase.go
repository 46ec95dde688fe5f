package app

import (
	"context"

	"go.uber.org/zap"

	"goforum/internal/forum/domain/entities"
	"goforum/internal/forum/ports/api"
	"goforum/internal/forum/ports/repositories"
	"goforum/pkg/logger"
)

// PostUseCaseImpl реализует интерфейс api.PostUseCase.
// Посты не содержат особой логики; слой существует ради симметрии границы.
type PostUseCaseImpl struct {
	postRepo repositories.PostRepository
}

// NewPostUseCase создает новый экземпляр сервиса постов.
func NewPostUseCase(postRepo repositories.PostRepository) api.PostUseCase {
	return &PostUseCaseImpl{postRepo: postRepo}
}

// CreatePost создает новый пост.
func (p *PostUseCaseImpl) CreatePost(ctx context.Context, title string) (*entities.Post, error) {
	post, err := p.postRepo.Create(ctx, title)
	if err != nil {
		return nil, err
	}
	logger.Log(ctx).Info(ctx, "post created", zap.Int64("postID", post.ID))
	return post, nil
}

// GetPost возвращает пост по идентификатору.
func (p *PostUseCaseImpl) GetPost(ctx context.Context, id int64) (*entities.Post, error) {
	return p.postRepo.FindByID(ctx, id)
}

// ListPosts возвращает все посты.
func (p *PostUseCaseImpl) ListPosts(ctx context.Context) ([]entities.Post, error) {
	return p.postRepo.FindAll(ctx)
}

// UpdatePost обновляет заголовок поста.
func (p *PostUseCaseImpl) UpdatePost(ctx context.Context, id int64, title string) (*entities.Post, error) {
	return p.postRepo.UpdateTitle(ctx, id, title)
}

// DeletePost удаляет пост.
func (p *PostUseCaseImpl) DeletePost(ctx context.Context, id int64) error {
	return p.postRepo.Delete(ctx, id)
}

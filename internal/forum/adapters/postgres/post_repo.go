package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goforum/internal/forum/domain/entities"
	"goforum/internal/forum/ports/repositories"
	"goforum/pkg/logger"
)

// PostRepository реализует интерфейс repositories.PostRepository для работы с Postgres.
type PostRepository struct {
	pool PgxPoolInterface
}

// NewPostRepository создает новый экземпляр репозитория постов.
func NewPostRepository(pool PgxPoolInterface) repositories.PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = "id, title, created_at, updated_at"

func scanPost(row pgx.Row, post *entities.Post) error {
	return row.Scan(&post.ID, &post.Title, &post.CreatedAt, &post.UpdatedAt)
}

// Create создает новый пост.
func (r *PostRepository) Create(ctx context.Context, title string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Create"))

	query := `
        INSERT INTO posts (title)
        VALUES ($1)
        RETURNING ` + postColumns + `
    `

	var post entities.Post
	if err := scanPost(r.pool.QueryRow(ctx, query, title), &post); err != nil {
		log.Error(ctx, "error creating post", zap.Error(err))
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return &post, nil
}

// FindByID находит пост по идентификатору.
func (r *PostRepository) FindByID(ctx context.Context, id int64) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindByID"))

	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE id = $1
    `

	var post entities.Post
	if err := scanPost(r.pool.QueryRow(ctx, query, id), &post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "post not found", zap.Int64("id", id))
			return nil, entities.ErrPostNotFound
		}
		log.Error(ctx, "error finding post", zap.Error(err))
		return nil, fmt.Errorf("error querying post by id: %w", err)
	}

	return &post, nil
}

// FindAll возвращает все посты, новые первыми.
func (r *PostRepository) FindAll(ctx context.Context) ([]entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindAll"))

	query := `
        SELECT ` + postColumns + `
        FROM posts
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing posts", zap.Error(err))
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	var posts []entities.Post
	for rows.Next() {
		var post entities.Post
		if err := scanPost(rows, &post); err != nil {
			log.Error(ctx, "error scanning post", zap.Error(err))
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// UpdateTitle обновляет заголовок поста и updated_at.
func (r *PostRepository) UpdateTitle(ctx context.Context, id int64, title string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "UpdateTitle"))

	query := `
        UPDATE posts
        SET title = $2, updated_at = now()
        WHERE id = $1
        RETURNING ` + postColumns + `
    `

	var post entities.Post
	if err := scanPost(r.pool.QueryRow(ctx, query, id, title), &post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "post not found for update", zap.Int64("id", id))
			return nil, entities.ErrPostNotFound
		}
		log.Error(ctx, "error updating post", zap.Error(err))
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return &post, nil
}

// Delete удаляет пост по идентификатору.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Delete"))

	query := `
        DELETE FROM posts
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting post", zap.Error(err))
		return fmt.Errorf("error deleting post: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "post not found for deletion", zap.Int64("id", id))
		return entities.ErrPostNotFound
	}

	return nil
}

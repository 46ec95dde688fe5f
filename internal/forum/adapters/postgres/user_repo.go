// Package postgres реализует репозитории на основе pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"goforum/internal/forum/domain/entities"
	"goforum/internal/forum/ports/repositories"
	"goforum/pkg/logger"
)

// PgxPoolInterface описывает операции пула pgx, используемые репозиториями.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "id, username, email, password_hash, created_at, updated_at"

func scanUser(row pgx.Row, user *entities.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

// FindByID находит пользователя по идентификатору.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `

	var user entities.User
	if err := scanUser(r.pool.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// FindByUsernameOrEmail ищет пользователя по email, если значение содержит '@',
// иначе по имени пользователя.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, value string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsernameOrEmail"))

	column := "username"
	if strings.Contains(value, "@") {
		column = "email"
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE ` + column + ` = $1
    `

	var user entities.User
	if err := scanUser(r.pool.QueryRow(ctx, query, value), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("lookup", column))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user", zap.Error(err))
		return nil, fmt.Errorf("error querying user by %s: %w", column, err)
	}

	return &user, nil
}

// FindByEmail ищет пользователя строго по email. Значение без '@' не
// совпадет ни с одной записью.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `

	var user entities.User
	if err := scanUser(r.pool.QueryRow(ctx, query, email), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found by email")
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return &user, nil
}

// Create атомарно создает нового пользователя. Нарушение ограничения
// уникальности возвращается как entities.ErrDuplicateKey; прочие коды
// Postgres оборачиваются в entities.StoreError.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING ` + userColumns + `
    `

	var user entities.User
	if err := scanUser(r.pool.QueryRow(ctx, query, username, email, passwordHash), &user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.UniqueViolation {
				log.Debug(ctx, "duplicate username or email", zap.String("constraint", pgErr.ConstraintName))
				return nil, entities.ErrDuplicateKey
			}
			log.Error(ctx, "unexpected database error", zap.String("code", pgErr.Code), zap.Error(err))
			return nil, &entities.StoreError{Code: pgErr.Code, Err: err}
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &user, nil
}

// UpdatePassword обновляет хэш пароля и updated_at одной атомарной записью.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "UpdatePassword"))

	query := `
        UPDATE users
        SET password_hash = $2, updated_at = now()
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		log.Error(ctx, "error updating password", zap.Error(err))
		return fmt.Errorf("error updating password: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for password update", zap.Int64("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}

// Package redis реализует хранилища сессий и токенов сброса пароля поверх Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goforum/internal/forum/ports/cache"
	"goforum/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrorFailedToCreateSession  = "failed to create session in redis"
	ErrorFailedToReadSession    = "failed to read session from redis"
	ErrorFailedToDestroySession = "failed to destroy session in redis"
)

const sessionKeyPrefix = "sess:"

// SessionTTL - время жизни сессии. Сессия живет до явного выхода,
// срок повторяет десятилетний срок cookie на стороне клиента.
const SessionTTL = 10 * 365 * 24 * time.Hour

// SessionStore реализует интерфейс cache.SessionStore поверх Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore создает новое хранилище сессий.
func NewSessionStore(client *redis.Client) cache.SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Create связывает идентификатор сессии с пользователем.
func (s *SessionStore) Create(ctx context.Context, sessionID string, userID int64) error {
	log := logger.Log(ctx).With(zap.String("store", "session"), zap.String("method", "Create"))

	value := strconv.FormatInt(userID, 10)
	if err := s.client.Set(ctx, sessionKey(sessionID), value, SessionTTL).Err(); err != nil {
		log.Error(ctx, ErrorFailedToCreateSession, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToCreateSession, err)
	}

	return nil
}

// Read возвращает userID сессии; false, если сессия отсутствует или истекла.
func (s *SessionStore) Read(ctx context.Context, sessionID string) (int64, bool, error) {
	log := logger.Log(ctx).With(zap.String("store", "session"), zap.String("method", "Read"))

	value, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		log.Error(ctx, ErrorFailedToReadSession, zap.Error(err))
		return 0, false, fmt.Errorf("%s: %w", ErrorFailedToReadSession, err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Error(ctx, "malformed session value", zap.Error(err))
		return 0, false, fmt.Errorf("parsing session value: %w", err)
	}

	return userID, true, nil
}

// Destroy удаляет сессию. Удаление несуществующей сессии успешно.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	log := logger.Log(ctx).With(zap.String("store", "session"), zap.String("method", "Destroy"))

	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		log.Error(ctx, ErrorFailedToDestroySession, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDestroySession, err)
	}

	return nil
}

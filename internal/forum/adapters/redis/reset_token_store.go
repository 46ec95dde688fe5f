package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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
	ErrorFailedToIssueToken   = "failed to store reset token in redis"
	ErrorFailedToConsumeToken = "failed to consume reset token"
	ErrorFailedToReadEntropy  = "failed to read random bytes for reset token"
)

const tokenKeyPrefix = "forgot-password:"

// TokenTTL - время жизни токена сброса пароля.
const TokenTTL = 24 * time.Hour

// 32 байта энтропии, 64 hex-символа в ссылке.
const tokenBytes = 32

// ResetTokenStore реализует интерфейс cache.ResetTokenStore поверх Redis.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore создает новое хранилище токенов сброса пароля.
func NewResetTokenStore(client *redis.Client) cache.ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func tokenKey(token string) string {
	return tokenKeyPrefix + token
}

// Issue генерирует случайный токен и сохраняет связь token -> userID на TokenTTL.
func (s *ResetTokenStore) Issue(ctx context.Context, userID int64) (string, error) {
	log := logger.Log(ctx).With(zap.String("store", "reset_token"), zap.String("method", "Issue"))

	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		log.Error(ctx, ErrorFailedToReadEntropy, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToReadEntropy, err)
	}
	token := hex.EncodeToString(buf)

	value := strconv.FormatInt(userID, 10)
	if err := s.client.Set(ctx, tokenKey(token), value, TokenTTL).Err(); err != nil {
		log.Error(ctx, ErrorFailedToIssueToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToIssueToken, err)
	}

	return token, nil
}

// Consume читает и удаляет токен одной командой GETDEL, поэтому токен
// не может быть использован дважды даже конкурентными запросами.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (int64, bool, error) {
	log := logger.Log(ctx).With(zap.String("store", "reset_token"), zap.String("method", "Consume"))

	value, err := s.client.GetDel(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		log.Error(ctx, ErrorFailedToConsumeToken, zap.Error(err))
		return 0, false, fmt.Errorf("%s: %w", ErrorFailedToConsumeToken, err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Error(ctx, "malformed reset token value", zap.Error(err))
		return 0, false, fmt.Errorf("parsing reset token value: %w", err)
	}

	return userID, true, nil
}

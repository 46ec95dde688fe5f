package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goforum/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("создание логгера для development", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")

		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("создание логгера для production", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "warn")

		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("некорректный уровень - ошибка", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "not-a-level")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing log level")
		assert.Nil(t, log)
	})
}

func TestLoggerMethods(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("методы логирования не паникуют", func(t *testing.T) {
		assert.NotPanics(t, func() {
			log.Debug(ctx, "debug message")
			log.Info(ctx, "info message", zap.String("key", "value"))
			log.Warn(ctx, "warn message")
			log.Error(ctx, "error message")
		})
	})

	t.Run("With возвращает новый экземпляр", func(t *testing.T) {
		withFields := log.With(zap.String("component", "test"))

		require.NotNil(t, withFields)
		assert.NotSame(t, log, withFields)
	})

	t.Run("WithRequestID добавляет поле из контекста", func(t *testing.T) {
		reqCtx := logger.NewRequestIDContext(ctx, "req-123")

		withID := log.WithRequestID(reqCtx)

		require.NotNil(t, withID)
		assert.NotSame(t, log, withID)
	})

	t.Run("WithRequestID без идентификатора возвращает тот же логгер", func(t *testing.T) {
		assert.Same(t, log, log.WithRequestID(ctx))
	})
}

package context_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goforum/pkg/logger"
)

func TestNewContextAndFromContext(t *testing.T) {
	t.Run("логгер сохраняется и извлекается из контекста", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), log)

		extracted, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, log, extracted)
	})

	t.Run("пустой контекст - ошибка", func(t *testing.T) {
		extracted, err := logger.FromContext(context.Background())

		require.ErrorIs(t, err, logger.ErrLoggerNotFound)
		assert.Nil(t, extracted)
	})
}

func TestLog(t *testing.T) {
	t.Run("возвращает логгер из контекста", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), log)

		assert.Same(t, log, logger.Log(ctx))
	})

	t.Run("без логгера в контексте возвращает небоевой запасной", func(t *testing.T) {
		assert.NotNil(t, logger.Log(context.Background()))
	})
}

func TestSetGlobalLogger(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "")
	require.NoError(t, err)

	logger.SetGlobalLogger(log)

	assert.Same(t, log, logger.Log(context.Background()))
}

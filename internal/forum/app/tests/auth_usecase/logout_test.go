package authusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешный выход", func(t *testing.T) {
		uc, m := newAuthUseCase()

		m.sessions.On("Destroy", mock.Anything, testSessionID).Return(nil).Once()

		ok := uc.Logout(ctx, testSessionID)

		assert.True(t, ok)
		m.assertExpectations(t)
	})

	t.Run("Сбой хранилища превращается в false", func(t *testing.T) {
		uc, m := newAuthUseCase()

		m.sessions.On("Destroy", mock.Anything, testSessionID).
			Return(errors.New("redis down")).Once()

		ok := uc.Logout(ctx, testSessionID)

		assert.False(t, ok)
		m.assertExpectations(t)
	})
}

package authusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goforum/internal/forum/domain/entities"
)

func TestForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Токен выдан и ссылка отправлена на email", func(t *testing.T) {
		uc, m := newAuthUseCase()
		user := testUser()
		token := "a1b2c3d4"

		m.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		m.resetTokens.On("Issue", mock.Anything, user.ID).Return(token, nil).Once()
		expectedBody := `<a href="http://localhost:3000/change-password/a1b2c3d4">reset password</a>`
		m.emailSender.On("Send", mock.Anything, user.Email, expectedBody).Return(nil).Once()

		ok, err := uc.ForgotPassword(ctx, user.Email)

		require.NoError(t, err)
		assert.True(t, ok)

		m.assertExpectations(t)
	})

	t.Run("Неизвестный email - true без выдачи токена", func(t *testing.T) {
		uc, m := newAuthUseCase()

		m.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
			Return(nil, entities.ErrUserNotFound).Once()

		ok, err := uc.ForgotPassword(ctx, "ghost@example.com")

		require.NoError(t, err)
		assert.True(t, ok)

		m.assertExpectations(t)
	})

	t.Run("Имя пользователя вместо email - true без письма", func(t *testing.T) {
		uc, m := newAuthUseCase()

		// Поиск идет строго по колонке email: значение без @ не находит
		// учетную запись даже при совпадении с чьим-то username.
		m.userRepo.On("FindByEmail", mock.Anything, "testuser").
			Return(nil, entities.ErrUserNotFound).Once()

		ok, err := uc.ForgotPassword(ctx, "testuser")

		require.NoError(t, err)
		assert.True(t, ok)

		m.resetTokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
		m.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("Ошибка БД при поиске пользователя", func(t *testing.T) {
		uc, m := newAuthUseCase()

		m.userRepo.On("FindByEmail", mock.Anything, "test@example.com").
			Return(nil, errors.New("database error")).Once()

		ok, err := uc.ForgotPassword(ctx, "test@example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "finding user")
		assert.False(t, ok)

		m.assertExpectations(t)
	})

	t.Run("Ошибка выдачи токена", func(t *testing.T) {
		uc, m := newAuthUseCase()
		user := testUser()

		m.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		m.resetTokens.On("Issue", mock.Anything, user.ID).
			Return("", errors.New("redis down")).Once()

		ok, err := uc.ForgotPassword(ctx, user.Email)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "issuing reset token")
		assert.False(t, ok)

		m.assertExpectations(t)
	})

	t.Run("Ошибка отправки письма", func(t *testing.T) {
		uc, m := newAuthUseCase()
		user := testUser()

		m.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		m.resetTokens.On("Issue", mock.Anything, user.ID).Return("a1b2c3d4", nil).Once()
		m.emailSender.On("Send", mock.Anything, user.Email, mock.Anything).
			Return(errors.New("smtp error")).Once()

		ok, err := uc.ForgotPassword(ctx, user.Email)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sending reset email")
		assert.False(t, ok)

		m.assertExpectations(t)
	})
}

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

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	testToken := "a1b2c3d4"
	newPassword := "newpassword"
	newHash := "new_hashed_password"

	t.Run("Успешная смена пароля с автоматическим входом", func(t *testing.T) {
		uc, m := newAuthUseCase()
		user := testUser()

		m.resetTokens.On("Consume", mock.Anything, testToken).Return(user.ID, true, nil).Once()
		m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
		m.passwordSvc.On("Hash", mock.Anything, newPassword).Return(newHash, nil).Once()
		m.userRepo.On("UpdatePassword", mock.Anything, user.ID, newHash).Return(nil).Once()
		m.sessions.On("Create", mock.Anything, testSessionID, user.ID).Return(nil).Once()

		response, err := uc.ChangePassword(ctx, testSessionID, testToken, newPassword)

		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Empty(t, response.Errors)
		require.NotNil(t, response.User)
		assert.Equal(t, user.ID, response.User.ID)

		m.assertExpectations(t)
	})

	t.Run("Слишком короткий новый пароль - токен не тратится", func(t *testing.T) {
		uc, m := newAuthUseCase()

		response, err := uc.ChangePassword(ctx, testSessionID, testToken, "ab")

		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Nil(t, response.User)
		assert.Equal(t, []entities.FieldError{
			{Field: "newPassword", Message: "length must be greater than 2"},
		}, response.Errors)

		m.assertExpectations(t)
	})

	t.Run("Неизвестный или истекший токен", func(t *testing.T) {
		uc, m := newAuthUseCase()

		m.resetTokens.On("Consume", mock.Anything, "stale-token").Return(int64(0), false, nil).Once()

		response, err := uc.ChangePassword(ctx, testSessionID, "stale-token", newPassword)

		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Nil(t, response.User)
		assert.Equal(t, []entities.FieldError{
			{Field: "token", Message: "token expired"},
		}, response.Errors)

		m.assertExpectations(t)
	})

	t.Run("Токен ссылается на удаленного пользователя", func(t *testing.T) {
		uc, m := newAuthUseCase()

		m.resetTokens.On("Consume", mock.Anything, testToken).Return(int64(42), true, nil).Once()
		m.userRepo.On("FindByID", mock.Anything, int64(42)).
			Return(nil, entities.ErrUserNotFound).Once()

		response, err := uc.ChangePassword(ctx, testSessionID, testToken, newPassword)

		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Nil(t, response.User)
		assert.Equal(t, []entities.FieldError{
			{Field: "token", Message: "user no longer exists"},
		}, response.Errors)

		m.assertExpectations(t)
	})

	t.Run("Ошибка потребления токена", func(t *testing.T) {
		uc, m := newAuthUseCase()

		m.resetTokens.On("Consume", mock.Anything, testToken).
			Return(int64(0), false, errors.New("redis down")).Once()

		response, err := uc.ChangePassword(ctx, testSessionID, testToken, newPassword)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "consuming reset token")
		assert.Nil(t, response)

		m.assertExpectations(t)
	})

	t.Run("Ошибка обновления пароля", func(t *testing.T) {
		uc, m := newAuthUseCase()
		user := testUser()

		m.resetTokens.On("Consume", mock.Anything, testToken).Return(user.ID, true, nil).Once()
		m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
		m.passwordSvc.On("Hash", mock.Anything, newPassword).Return(newHash, nil).Once()
		m.userRepo.On("UpdatePassword", mock.Anything, user.ID, newHash).
			Return(errors.New("database error")).Once()

		response, err := uc.ChangePassword(ctx, testSessionID, testToken, newPassword)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "updating password")
		assert.Nil(t, response)

		m.assertExpectations(t)
	})
}

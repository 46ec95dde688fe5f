package authusecase_test

import (
	"testing"
	"time"

	"goforum/internal/forum/app"
	"goforum/internal/forum/domain/entities"
	"goforum/internal/forum/ports/api"
)

const (
	testSessionID     = "4b3c21d8-5a0f-4a8e-9c7d-1f2e3d4c5b6a"
	testResetLinkBase = "http://localhost:3000"
)

// useCaseMocks объединяет моки всех портов сервиса аутентификации.
type useCaseMocks struct {
	userRepo    *mockUserRepository
	sessions    *mockSessionStore
	resetTokens *mockResetTokenStore
	passwordSvc *mockPasswordService
	emailSender *mockEmailSender
}

func newAuthUseCase() (api.AuthUseCase, *useCaseMocks) {
	m := &useCaseMocks{
		userRepo:    new(mockUserRepository),
		sessions:    new(mockSessionStore),
		resetTokens: new(mockResetTokenStore),
		passwordSvc: new(mockPasswordService),
		emailSender: new(mockEmailSender),
	}

	uc := app.NewAuthUseCase(m.userRepo, m.sessions, m.resetTokens,
		m.passwordSvc, m.emailSender, testResetLinkBase)

	return uc, m
}

func (m *useCaseMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.userRepo.AssertExpectations(t)
	m.sessions.AssertExpectations(t)
	m.resetTokens.AssertExpectations(t)
	m.passwordSvc.AssertExpectations(t)
	m.emailSender.AssertExpectations(t)
}

func testUser() *entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &entities.User{
		ID:           42,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

package authusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"goforum/internal/forum/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsernameOrEmail(ctx context.Context, value string) (*entities.User, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, username, email, passwordHash string) (*entities.User, error) {
	args := m.Called(ctx, username, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Create(ctx context.Context, sessionID string, userID int64) error {
	return m.Called(ctx, sessionID, userID).Error(0)
}

func (m *mockSessionStore) Read(ctx context.Context, sessionID string) (int64, bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *mockSessionStore) Destroy(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockResetTokenStore struct {
	mock.Mock
}

func (m *mockResetTokenStore) Issue(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockResetTokenStore) Consume(ctx context.Context, token string) (int64, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) Send(ctx context.Context, to, htmlBody string) error {
	return m.Called(ctx, to, htmlBody).Error(0)
}

package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goforum/internal/forum/domain/entities"
	"goforum/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection error")

var userColumns = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

func newTestUser() entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.User{
		ID:           42,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func assertUserEquals(t *testing.T, expected *entities.User, actual *entities.User) {
	t.Helper()

	require.NotNil(t, actual)
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.Username, actual.Username)
	assert.Equal(t, expected.Email, actual.Email)
	assert.Equal(t, expected.PasswordHash, actual.PasswordHash)
	assert.Equal(t, expected.CreatedAt, actual.CreatedAt)
	assert.Equal(t, expected.UpdatedAt, actual.UpdatedAt)
}

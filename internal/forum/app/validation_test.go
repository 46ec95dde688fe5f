package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goforum/internal/forum/domain/entities"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		expected []entities.FieldError
	}{
		{
			name:     "корректные данные",
			username: "testuser",
			email:    "test@example.com",
			password: "password123",
			expected: nil,
		},
		{
			name:     "email без @",
			username: "testuser",
			email:    "not-an-email",
			password: "password123",
			expected: []entities.FieldError{
				{Field: "email", Message: msgInvalidEmail},
			},
		},
		{
			name:     "короткое имя пользователя",
			username: "ab",
			email:    "test@example.com",
			password: "password123",
			expected: []entities.FieldError{
				{Field: "username", Message: msgUsernameTooShort},
			},
		},
		{
			name:     "имя пользователя с @",
			username: "user@name",
			email:    "test@example.com",
			password: "password123",
			expected: []entities.FieldError{
				{Field: "username", Message: msgUsernameHasAt},
			},
		},
		{
			name:     "короткий пароль",
			username: "testuser",
			email:    "test@example.com",
			password: "ab",
			expected: []entities.FieldError{
				{Field: "password", Message: msgPasswordTooShort},
			},
		},
		{
			name:     "граница - три символа проходят",
			username: "abc",
			email:    "a@b",
			password: "abc",
			expected: nil,
		},
		{
			name:     "все поля пустые",
			username: "",
			email:    "",
			password: "",
			expected: []entities.FieldError{
				{Field: "email", Message: msgInvalidEmail},
				{Field: "username", Message: msgUsernameTooShort},
				{Field: "password", Message: msgPasswordTooShort},
			},
		},
		{
			name:     "короткое имя с @ дает два нарушения",
			username: "@b",
			email:    "test@example.com",
			password: "password123",
			expected: []entities.FieldError{
				{Field: "username", Message: msgUsernameTooShort},
				{Field: "username", Message: msgUsernameHasAt},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateRegister(tt.username, tt.email, tt.password)
			assert.Equal(t, tt.expected, errs)
		})
	}
}

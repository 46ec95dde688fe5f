package app

import (
	"strings"

	"goforum/internal/forum/domain/entities"
)

// Сообщения об ошибках валидации. Правило длины пароля намеренно слабое
// (> 2 символов) и повторяет эталонное поведение; см. DESIGN.md.
const (
	msgInvalidEmail     = "invalid email"
	msgUsernameTooShort = "length must be greater than 2"
	msgUsernameHasAt    = "cannot include an @"
	msgPasswordTooShort = "length must be greater than 2"
)

const (
	minUsernameLength = 3
	minPasswordLength = 3
)

// validateRegister выполняет структурную проверку данных регистрации.
// Чистая функция без ввода-вывода; nil означает отсутствие нарушений.
func validateRegister(username, email, password string) []entities.FieldError {
	var errs []entities.FieldError

	if !strings.Contains(email, "@") {
		errs = append(errs, entities.FieldError{Field: "email", Message: msgInvalidEmail})
	}

	if len(username) < minUsernameLength {
		errs = append(errs, entities.FieldError{Field: "username", Message: msgUsernameTooShort})
	}

	if strings.Contains(username, "@") {
		errs = append(errs, entities.FieldError{Field: "username", Message: msgUsernameHasAt})
	}

	if len(password) < minPasswordLength {
		errs = append(errs, entities.FieldError{Field: "password", Message: msgPasswordTooShort})
	}

	return errs
}

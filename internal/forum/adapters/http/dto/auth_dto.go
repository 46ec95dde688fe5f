// Package dto содержит объекты передачи данных HTTP границы.
package dto

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// ForgotPasswordRequest содержит email для сброса пароля.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest содержит токен сброса и новый пароль.
type ChangePasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

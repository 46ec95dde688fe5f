package entities

// FieldError описывает нарушение валидации или бизнес-правила,
// привязанное к конкретному полю запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserResponse - результат операции аутентификации: либо пользователь,
// либо непустой список ошибок, но никогда и то и другое.
type UserResponse struct {
	User   *User        `json:"user,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// ErrorResponse создает UserResponse с единственной ошибкой поля.
func ErrorResponse(field, message string) *UserResponse {
	return &UserResponse{Errors: []FieldError{{Field: field, Message: message}}}
}

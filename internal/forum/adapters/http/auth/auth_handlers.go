// Package auth содержит HTTP обработчики операций аутентификации.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goforum/internal/forum/adapters/http/dto"
	"goforum/internal/forum/ports/api"
	"goforum/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister       = "auth handler: register"
	LogHandlerLogin          = "auth handler: login"
	LogHandlerLogout         = "auth handler: logout"
	LogHandlerMe             = "auth handler: me"
	LogHandlerForgotPassword = "auth handler: forgot password"
	LogHandlerChangePassword = "auth handler: change password"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorInternalServer       = "internal server error"
)

// Вспомогательная функция для отправки ответа с ошибкой.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики для аутентификации.
type Handler struct {
	authUseCase  api.AuthUseCase
	secureCookie bool
}

// NewHandler создает новый экземпляр обработчика аутентификации.
// secureCookie включает флаг Secure на cookie сессии (production).
func NewHandler(authUseCase api.AuthUseCase, secureCookie bool) *Handler {
	return &Handler{
		authUseCase:  authUseCase,
		secureCookie: secureCookie,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	sessionID := ensureSessionID(ctx)
	response, err := h.authUseCase.Register(requestCtx, sessionID, req.Username, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if response.User != nil {
		setSessionCookie(ctx, sessionID, h.secureCookie)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	sessionID := ensureSessionID(ctx)
	response, err := h.authUseCase.Login(requestCtx, sessionID, req.UsernameOrEmail, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if response.User != nil {
		setSessionCookie(ctx, sessionID, h.secureCookie)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя.
// Cookie сессии очищается независимо от результата на стороне хранилища.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	ok := h.authUseCase.Logout(requestCtx, readSessionID(ctx))
	clearSessionCookie(ctx)

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"success": ok,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Me возвращает пользователя текущей сессии; null, если сессии нет.
func (h *Handler) Me(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerMe)

	user, err := h.authUseCase.Me(requestCtx, readSessionID(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"user": user,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ForgotPassword обрабатывает запрос на сброс пароля.
func (h *Handler) ForgotPassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerForgotPassword)

	var req dto.ForgotPasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	ok, err := h.authUseCase.ForgotPassword(requestCtx, req.Email)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"success": ok,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ChangePassword обрабатывает смену пароля по токену сброса.
func (h *Handler) ChangePassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerChangePassword)

	var req dto.ChangePasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	sessionID := ensureSessionID(ctx)
	response, err := h.authUseCase.ChangePassword(requestCtx, sessionID, req.Token, req.NewPassword)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if response.User != nil {
		setSessionCookie(ctx, sessionID, h.secureCookie)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

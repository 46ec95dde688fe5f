// Package app содержит прикладную логику форума.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goforum/internal/forum/domain/entities"
	"goforum/internal/forum/ports/api"
	"goforum/internal/forum/ports/cache"
	"goforum/internal/forum/ports/repositories"
	svc "goforum/internal/forum/ports/services"
	"goforum/pkg/logger"
)

const (
	methodRegister       = "Register"
	methodLogin          = "Login"
	methodLogout         = "Logout"
	methodMe             = "Me"
	methodForgotPassword = "ForgotPassword"
	methodChangePassword = "ChangePassword"

	msgStartRegistration   = "starting user registration"
	msgValidationFailed    = "registration input rejected"
	msgDuplicateUser       = "duplicate username or email on insert"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt for non-existent account"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgProcessingLogout    = "processing logout request"
	msgUserLoggedOut       = "user logged out successfully"
	msgNoActiveSession     = "no active session"
	msgStaleSessionUser    = "session references deleted user"
	msgForgotPassword      = "processing forgot-password request"
	msgUnknownResetEmail   = "forgot-password for unknown email"
	msgResetTokenIssued    = "reset token issued"
	msgChangingPassword    = "processing change-password request"
	msgExpiredResetToken   = "expired or unknown reset token"
	msgStaleResetToken     = "reset token references deleted user"
	msgPasswordChanged     = "password changed successfully"

	msgErrHashPassword   = "failed to hash password"
	msgErrCreateUser     = "failed to create user"
	msgErrCreateSession  = "failed to create session"
	msgErrDestroySession = "failed to destroy session"
	msgErrReadSession    = "failed to read session"
	msgErrFindingUser    = "error finding user"
	msgErrVerifyPassword = "error verifying password"
	msgErrIssueToken     = "failed to issue reset token"
	msgErrConsumeToken   = "failed to consume reset token"
	msgErrSendEmail      = "failed to send reset email"
	msgErrUpdatePassword = "failed to update password"

	errCtxHashingPassword  = "hashing password"
	errCtxCreatingSession  = "creating session"
	errCtxReadingSession   = "reading session"
	errCtxFindingUser      = "finding user"
	errCtxVerifyingPass    = "verifying password"
	errCtxIssuingToken     = "issuing reset token"
	errCtxConsumingToken   = "consuming reset token"
	errCtxSendingEmail     = "sending reset email"
	errCtxUpdatingPassword = "updating password"
)

// Сообщения бизнес-отказов, возвращаемые как FieldError.
const (
	msgUsernameTaken    = "username was already taken"
	msgAccountNotExists = "that account doesn't exist"
	msgIncorrectPass    = "incorrect password"
	msgTokenExpired     = "token expired"
	msgUserGone         = "user no longer exists"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo      repositories.UserRepository
	sessions      cache.SessionStore
	resetTokens   cache.ResetTokenStore
	passwordSvc   svc.PasswordService
	emailSender   svc.EmailSender
	resetLinkBase string
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
// resetLinkBase - базовый URL фронтенда для ссылок сброса пароля.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	sessions cache.SessionStore,
	resetTokens cache.ResetTokenStore,
	passwordSvc svc.PasswordService,
	emailSender svc.EmailSender,
	resetLinkBase string,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:      userRepo,
		sessions:      sessions,
		resetTokens:   resetTokens,
		passwordSvc:   passwordSvc,
		emailSender:   emailSender,
		resetLinkBase: resetLinkBase,
	}
}

// Register создает нового пользователя и привязывает к нему сессию.
func (a *AuthUseCaseImpl) Register(ctx context.Context, sessionID, username, email, password string) (*entities.UserResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if errs := validateRegister(username, email, password); errs != nil {
		log.Debug(ctx, msgValidationFailed, zap.Int("violations", len(errs)))
		return &entities.UserResponse{Errors: errs}, nil
	}

	hash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := a.userRepo.Create(ctx, username, email, hash)
	if err != nil {
		// Уникальность обеспечивается ограничением БД; колонка коллизии
		// отсюда не видна, ошибка сообщается против username.
		if errors.Is(err, entities.ErrDuplicateKey) {
			log.Debug(ctx, msgDuplicateUser)
			return entities.ErrorResponse("username", msgUsernameTaken), nil
		}
		var storeErr *entities.StoreError
		if errors.As(err, &storeErr) {
			log.Error(ctx, msgErrCreateUser, zap.String("code", storeErr.Code))
			return entities.ErrorResponse("error", "unexpected error code "+storeErr.Code), nil
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, err
	}

	if err := a.sessions.Create(ctx, sessionID, user.ID); err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", user.ID))
	return &entities.UserResponse{User: user}, nil
}

// Login аутентифицирует пользователя по имени или email и паролю.
func (a *AuthUseCaseImpl) Login(ctx context.Context, sessionID, usernameOrEmail, password string) (*entities.UserResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return entities.ErrorResponse("usernameOrEmail", msgAccountNotExists), nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPass, err)
	}
	if !valid {
		// Ответ отличим от "account doesn't exist" - известная утечка
		// информации, сохраненная из эталонного поведения.
		log.Debug(ctx, msgInvalidPasswordAuth, zap.Int64("userID", user.ID))
		return entities.ErrorResponse("password", msgIncorrectPass), nil
	}

	if err := a.sessions.Create(ctx, sessionID, user.ID); err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return &entities.UserResponse{User: user}, nil
}

// Logout уничтожает сессию. Сбой хранилища логируется и превращается
// в false; cookie очищается границей независимо от результата.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, sessionID string) bool {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	if err := a.sessions.Destroy(ctx, sessionID); err != nil {
		log.Error(ctx, msgErrDestroySession, zap.Error(err))
		return false
	}

	log.Info(ctx, msgUserLoggedOut)
	return true
}

// Me возвращает пользователя текущей сессии либо nil, если сессии нет
// или пользователь был удален.
func (a *AuthUseCaseImpl) Me(ctx context.Context, sessionID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodMe))

	if sessionID == "" {
		log.Debug(ctx, msgNoActiveSession)
		return nil, nil
	}

	userID, ok, err := a.sessions.Read(ctx, sessionID)
	if err != nil {
		log.Error(ctx, msgErrReadSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxReadingSession, err)
	}
	if !ok {
		log.Debug(ctx, msgNoActiveSession)
		return nil, nil
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgStaleSessionUser, zap.Int64("userID", userID))
			return nil, nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return user, nil
}

// ForgotPassword выдает токен сброса и отправляет ссылку на email.
// Для неизвестного email возвращает true, не раскрывая наличие учетной записи.
func (a *AuthUseCaseImpl) ForgotPassword(ctx context.Context, email string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodForgotPassword))
	log.Debug(ctx, msgForgotPassword)

	// Поиск строго по колонке email; имя пользователя не принимается.
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUnknownResetEmail)
			return true, nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	token, err := a.resetTokens.Issue(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.Int64("userID", user.ID))
		return false, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	body := fmt.Sprintf(`<a href="%s/change-password/%s">reset password</a>`, a.resetLinkBase, token)
	if err := a.emailSender.Send(ctx, user.Email, body); err != nil {
		log.Error(ctx, msgErrSendEmail, zap.Error(err), zap.Int64("userID", user.ID))
		return false, fmt.Errorf("%s: %w", errCtxSendingEmail, err)
	}

	log.Info(ctx, msgResetTokenIssued, zap.Int64("userID", user.ID))
	return true, nil
}

// ChangePassword потребляет токен сброса, обновляет пароль и открывает
// новую сессию для пользователя.
func (a *AuthUseCaseImpl) ChangePassword(ctx context.Context, sessionID, token, newPassword string) (*entities.UserResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", methodChangePassword))
	log.Debug(ctx, msgChangingPassword)

	if len(newPassword) < minPasswordLength {
		return entities.ErrorResponse("newPassword", msgPasswordTooShort), nil
	}

	// Токен удаляется до поиска пользователя: даже если пользователь
	// исчез, токен уже потрачен и повторно не сработает.
	userID, ok, err := a.resetTokens.Consume(ctx, token)
	if err != nil {
		log.Error(ctx, msgErrConsumeToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxConsumingToken, err)
	}
	if !ok {
		log.Debug(ctx, msgExpiredResetToken)
		return entities.ErrorResponse("token", msgTokenExpired), nil
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgStaleResetToken, zap.Int64("userID", userID))
			return entities.ErrorResponse("token", msgUserGone), nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	hash, err := a.passwordSvc.Hash(ctx, newPassword)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	if err := a.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		log.Error(ctx, msgErrUpdatePassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingPassword, err)
	}

	// Автоматический вход после смены пароля.
	if err := a.sessions.Create(ctx, sessionID, user.ID); err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	log.Info(ctx, msgPasswordChanged, zap.Int64("userID", user.ID))
	return &entities.UserResponse{User: user}, nil
}

package auth

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CookieName - имя cookie с идентификатором сессии.
const CookieName = "qid"

// Десятилетний срок жизни cookie повторяет TTL серверной сессии:
// сессия живет до явного выхода.
const cookieMaxAge = 10 * 365 * 24 * 60 * 60

// readSessionID возвращает идентификатор сессии из cookie запроса.
func readSessionID(ctx fiber.Ctx) string {
	return ctx.Cookies(CookieName)
}

// ensureSessionID возвращает идентификатор сессии из cookie либо
// генерирует новый непрозрачный идентификатор.
func ensureSessionID(ctx fiber.Ctx) string {
	if id := ctx.Cookies(CookieName); id != "" {
		return id
	}
	return uuid.NewString()
}

// setSessionCookie устанавливает cookie сессии.
func setSessionCookie(ctx fiber.Ctx, sessionID string, secure bool) {
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSessionCookie удаляет cookie сессии на клиенте.
func clearSessionCookie(ctx fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Package http содержит компоненты для HTTP сервера форума.
package http

import (
	"github.com/gofiber/fiber/v3"

	"goforum/internal/forum/adapters/http/auth"
	"goforum/internal/forum/adapters/http/middleware"
	"goforum/internal/forum/adapters/http/posts"
	"goforum/internal/forum/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// secureCookie включает флаг Secure на cookie сессии.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, postUseCase api.PostUseCase, secureCookie bool) {
	authHandler := auth.NewHandler(authUseCase, secureCookie)
	postHandler := posts.NewHandler(postUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Маршруты аутентификации.
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", authHandler.Me)
	authRoutes.Post("/forgot-password", authHandler.ForgotPassword)
	authRoutes.Post("/change-password", authHandler.ChangePassword)

	// Маршруты постов.
	postRoutes := apiV1.Group("/posts")
	postRoutes.Post("/", postHandler.CreatePost)
	postRoutes.Get("/", postHandler.ListPosts)
	postRoutes.Get("/:post_id", postHandler.GetPost)
	postRoutes.Patch("/:post_id", postHandler.UpdatePost)
	postRoutes.Delete("/:post_id", postHandler.DeletePost)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}

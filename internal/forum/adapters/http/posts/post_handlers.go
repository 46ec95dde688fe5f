// Package posts содержит HTTP обработчики постов форума.
package posts

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goforum/internal/forum/adapters/http/dto"
	"goforum/internal/forum/domain/entities"
	"goforum/internal/forum/ports/api"
	"goforum/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreatePost = "post handler: create"
	LogHandlerGetPost    = "post handler: get"
	LogHandlerListPosts  = "post handler: list"
	LogHandlerUpdatePost = "post handler: update"
	LogHandlerDeletePost = "post handler: delete"

	ErrorInvalidRequest = "invalid request"
	ErrorInvalidPostID  = "invalid post id"
	ErrorPostNotFound   = "post not found"
	ErrorInternalServer = "internal server error"
)

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики для постов.
type Handler struct {
	postUseCase api.PostUseCase
}

// NewHandler создает новый экземпляр обработчика постов.
func NewHandler(postUseCase api.PostUseCase) *Handler {
	return &Handler{postUseCase: postUseCase}
}

func parsePostID(ctx fiber.Ctx) (int64, error) {
	return strconv.ParseInt(ctx.Params("post_id"), 10, 64)
}

// CreatePost создает новый пост.
func (h *Handler) CreatePost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreatePost)

	var req dto.PostRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Title == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "title is required")
	}

	post, err := h.postUseCase.CreatePost(requestCtx, req.Title)
	if err != nil {
		log.Error(requestCtx, ErrorInternalServer, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusCreated).JSON(post); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetPost возвращает пост по идентификатору.
func (h *Handler) GetPost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetPost)

	id, err := parsePostID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidPostID)
	}

	post, err := h.postUseCase.GetPost(requestCtx, id)
	if err != nil {
		if errors.Is(err, entities.ErrPostNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorPostNotFound)
		}
		log.Error(requestCtx, ErrorInternalServer, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(post); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListPosts возвращает все посты.
func (h *Handler) ListPosts(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListPosts)

	posts, err := h.postUseCase.ListPosts(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorInternalServer, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if posts == nil {
		posts = []entities.Post{}
	}

	if err := ctx.Status(http.StatusOK).JSON(posts); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdatePost обновляет заголовок поста.
func (h *Handler) UpdatePost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdatePost)

	id, err := parsePostID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidPostID)
	}

	var req dto.PostRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Title == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "title is required")
	}

	post, err := h.postUseCase.UpdatePost(requestCtx, id, req.Title)
	if err != nil {
		if errors.Is(err, entities.ErrPostNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorPostNotFound)
		}
		log.Error(requestCtx, ErrorInternalServer, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(post); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeletePost удаляет пост.
func (h *Handler) DeletePost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeletePost)

	id, err := parsePostID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidPostID)
	}

	if err := h.postUseCase.DeletePost(requestCtx, id); err != nil {
		if errors.Is(err, entities.ErrPostNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorPostNotFound)
		}
		log.Error(requestCtx, ErrorInternalServer, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

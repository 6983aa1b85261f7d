package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerListUsers  = "handling list users request"
	LogHandlerCreateUser = "handling create user request"
	LogHandlerGetUser    = "handling get user request"
)

// ListUsers возвращает всех пользователей.
func (h *Handler) ListUsers(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ListUsers"))
	log.Debug(reqCtx, LogHandlerListUsers)

	users, err := h.users.ListUsers(reqCtx)
	if err != nil {
		return handleError(ctx, log, err)
	}

	return send(ctx, fiber.StatusOK, users)
}

// CreateUser создает пользователя.
func (h *Handler) CreateUser(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.CreateUser"))
	log.Debug(reqCtx, LogHandlerCreateUser)

	var req dto.CreateUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return send(ctx, fiber.StatusBadRequest, dto.FailureResponse{Error: ErrMsgInvalidRequestBody})
	}

	user, err := h.users.CreateUser(reqCtx, req.FirstName, req.LastName, req.Email)
	if err != nil {
		return handleError(ctx, log, err)
	}
	h.metrics.UserCreated()

	return send(ctx, fiber.StatusOK, dto.CreateUserResponse{Success: true, User: user})
}

// GetUser возвращает пользователя с числом заметок: массив из нуля или одного элемента.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.GetUser"))
	log.Debug(reqCtx, LogHandlerGetUser)

	user, err := h.users.GetUserWithNoteCount(reqCtx, ctx.Params("userId"))
	if err != nil {
		return handleError(ctx, log, err)
	}

	return send(ctx, fiber.StatusOK, user.Slice())
}

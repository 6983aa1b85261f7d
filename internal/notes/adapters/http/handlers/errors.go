package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/validation"
	"gonotes/pkg/logger"
)

// Сообщения об ошибках, которые уходят клиенту.
const (
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "Internal server error"
)

// handleError переводит ошибку use case в HTTP-ответ.
func handleError(ctx fiber.Ctx, log *logger.Logger, err error) error {
	reqCtx := requestContext(ctx)

	var verr *validation.Error
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		return send(ctx, fiber.StatusBadRequest, dto.FailureResponse{Error: app.ErrUserNotFound.Error()})
	case errors.Is(err, app.ErrValidation) && errors.As(err, &verr):
		return send(ctx, fiber.StatusBadRequest, dto.FailureResponse{Error: verr.Message})
	case errors.Is(err, app.ErrInvalidDate):
		return send(ctx, fiber.StatusBadRequest, dto.ErrorResponse{Error: app.ErrInvalidDate.Error()})
	case errors.Is(err, app.ErrNoteNotFound):
		return send(ctx, fiber.StatusNotFound, dto.ErrorResponse{Error: app.ErrNoteNotFound.Error()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return send(ctx, fiberErr.Code, dto.ErrorResponse{Error: fiberErr.Message})
	}

	log.Error(reqCtx, "request failed", zap.Error(err))
	return send(ctx, fiber.StatusInternalServerError, dto.ErrorResponse{Error: ErrMsgInternal})
}

func send(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

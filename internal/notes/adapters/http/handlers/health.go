package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/pkg/logger"
)

// Health проверяет доступность базы.
func (h *Handler) Health(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)

	if err := h.health.Ping(reqCtx); err != nil {
		logger.Log(reqCtx).Warn(reqCtx, "health check failed", zap.Error(err))
		return send(ctx, fiber.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
	}

	return send(ctx, fiber.StatusOK, dto.HealthResponse{Status: "ok"})
}

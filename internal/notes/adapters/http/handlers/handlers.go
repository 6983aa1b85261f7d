// Package handlers содержит HTTP-обработчики пользователей и заметок.
package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/metrics"
	"gonotes/internal/notes/ports/services"
)

// Handler обработчик HTTP-запросов сервиса.
type Handler struct {
	users   services.UserService
	notes   services.NoteService
	health  services.HealthChecker
	metrics *metrics.Metrics
}

// NewHandler создает новый экземпляр обработчика.
func NewHandler(users services.UserService, notes services.NoteService, health services.HealthChecker, m *metrics.Metrics) *Handler {
	return &Handler{
		users:   users,
		notes:   notes,
		health:  health,
		metrics: m,
	}
}

func requestContext(ctx fiber.Ctx) context.Context {
	return middleware.RequestContext(ctx)
}

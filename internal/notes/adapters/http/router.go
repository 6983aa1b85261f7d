// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/adapters/http/handlers"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/metrics"
	"gonotes/internal/notes/ports/services"
)

// Dependencies зависимости маршрутизатора.
type Dependencies struct {
	Users          services.UserService
	Notes          services.NoteService
	Health         services.HealthChecker
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	h := handlers.NewHandler(deps.Users, deps.Notes, deps.Health, deps.Metrics)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	// Метрики стоят снаружи восстановления, чтобы учитывать и ответы 500 после паники.
	app.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{AllowOrigins: deps.AllowedOrigins}))

	app.Get("/users", h.ListUsers)
	app.Post("/users", h.CreateUser)
	app.Get("/users/:userId", h.GetUser)
	app.Get("/users/:userId/notes", h.ListNotes)

	app.Post("/notes", h.CreateNote)
	app.Get("/user/:userId/note/:noteId", h.GetNote)
	app.Put("/user/:userId/notes/:noteId/toggleStatus", h.ToggleStatus)

	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Route not found"})
	})
}

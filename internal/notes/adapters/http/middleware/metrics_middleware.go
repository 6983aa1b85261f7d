package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"gonotes/internal/notes/metrics"
)

// NewMetricsMiddleware учитывает каждый запрос по шаблону маршрута.
func NewMetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		route := "unmatched"
		if r := ctx.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		m.ObserveRequest(ctx.Method(), route, ctx.Response().StatusCode(), time.Since(start))

		return err
	}
}

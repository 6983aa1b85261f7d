// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonotes/pkg/logger"
)

// HeaderRequestID заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// RequestContextKey ключ Locals, под которым лежит контекст запроса.
const RequestContextKey = "requestContext"

// MaxRequestIDLength предельная длина идентификатора, принимаемого от клиента.
const MaxRequestIDLength = 64

// NewRequestIDMiddleware кладет в Locals контекст с идентификатором запроса
// и возвращает идентификатор клиенту. Чужой идентификатор принимается только
// если он проходит clientRequestID, иначе генерируется новый.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx := logger.NewRequestIDContext(ctx.Context(), clientRequestID(ctx.Get(HeaderRequestID)))
		id, _ := logger.GetRequestID(reqCtx)

		ctx.Locals(RequestContextKey, reqCtx)
		ctx.Set(HeaderRequestID, id)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса из Locals.
func RequestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals(RequestContextKey).(context.Context); ok {
		return reqCtx
	}
	return ctx.Context() // Запасной вариант
}

// clientRequestID возвращает id, если он не длиннее MaxRequestIDLength
// и состоит из [A-Za-z0-9._-], иначе пустую строку.
func clientRequestID(id string) string {
	if len(id) > MaxRequestIDLength {
		return ""
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '-':
		default:
			return ""
		}
	}
	return id
}

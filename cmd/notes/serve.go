package main

import (
	"context"
	"sync/atomic"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// serveHTTP запускает сервер в отдельной горутине. Если Listen вернул
// ошибку, флаг выставляется и вызывается cancel, чтобы остановить сервис.
func serveHTTP(ctx context.Context, server *fiber.App, addr string, cancel context.CancelFunc) *atomic.Bool {
	var failed atomic.Bool
	go func() {
		if err := server.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			logger.Log(ctx).Error(ctx, ErrStartHTTPServer, zap.String("address", addr), zap.Error(err))
			failed.Store(true)
			cancel()
		}
	}()
	return &failed
}

type closer interface {
	Close(ctx context.Context) error
}

// closeDatabase закрывает базу на пути ошибки запуска, ошибка только логируется.
func closeDatabase(ctx context.Context, database closer) {
	if err := database.Close(ctx); err != nil {
		logger.Log(ctx).Error(ctx, ErrCloseDB, zap.Error(err))
	}
}

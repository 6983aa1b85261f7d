// Package shutdown реализует корректное завершение: ожидание SIGINT/SIGTERM
// и параллельный запуск хуков закрытия в рамках таймаута.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// Hook освобождает один ресурс.
type Hook func(context.Context) error

// Wait блокируется до сигнала завершения или отмены ctx, после чего
// запускает хуки. Возвращается, когда все хуки отработали или истек timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logger.Log(ctx).Info(ctx, "shutdown requested", zap.Int("hooks", len(hooks)))
	Run(context.WithoutCancel(ctx), timeout, hooks...)
}

// Run выполняет хуки параллельно. Ошибки хуков логируются и не прерывают остальные.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := logger.Log(ctx)

	var wg sync.WaitGroup
	for i, hook := range hooks {
		wg.Add(1)
		go func(i int, fn Hook) {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				log.Error(ctx, "shutdown hook failed", zap.Int("hook", i), zap.Error(err))
			}
		}(i, hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn(ctx, "shutdown timed out", zap.Duration("timeout", timeout))
	}
}

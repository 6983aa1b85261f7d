// Package main реализует точку входа службы заметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/cache"
	notesHTTP "gonotes/internal/notes/adapters/http"
	"gonotes/internal/notes/adapters/mongodb"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/config"
	"gonotes/internal/notes/db"
	"gonotes/internal/notes/metrics"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/db/redis"
	"gonotes/pkg/logger"
	"gonotes/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to initialize user cache"
	ErrTimezone             = "failed to load timezone"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrCloseDB              = "failed to close database"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "note service started"
	LogServiceShutdownDone = "note service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing cache connection"
	LogInitCache           = "initializing user cache"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		location, err := cfg.Location()
		if err != nil {
			log.Error(ctx, ErrTimezone, zap.Error(err))
			exitCode = 1
			return
		}

		database, err := db.New(ctx, &cfg.Mongo)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("timezone", location.String()),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := mongodb.NewRepositoryFactory(database.Database(), cfg.Mongo.QueryTimeout)
		var userRepo repositories.UserRepository = repoFactory.UserRepository()
		noteRepo := repoFactory.NoteRepository()

		var redisClient *redis.Client
		if cfg.Redis.Enabled() {
			log.Info(ctx, LogInitCache)
			redisClient, err = redis.New(ctx, cfg.Redis.ClientOptions())
			if err != nil {
				log.Error(ctx, ErrInitCache, zap.Error(err))
				closeDatabase(ctx, database)
				exitCode = 1
				return
			}
			userRepo = cache.NewUserRepository(userRepo, redisClient.RawClient(), cfg.Redis.TTL)
		}

		log.Info(ctx, LogInitUseCases)
		userUseCase := app.NewUserUseCase(userRepo)
		noteUseCase := app.NewNoteUseCase(noteRepo, userRepo, app.WithLocation(location))

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		notesHTTP.SetupRouter(server, notesHTTP.Dependencies{
			Users:          userUseCase,
			Notes:          noteUseCase,
			Health:         database,
			Metrics:        metrics.New(),
			AllowedOrigins: cfg.HTTP.AllowedOrigins(),
		})

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		listenFailed := serveHTTP(ctx, server, cfg.HTTP.GetAddress(), cancel)

		shutdown.Wait(runCtx, cfg.Shutdown.GetTimeout(),
			// HTTP останавливается раньше пула, чтобы запросы успели завершиться.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				if err := server.ShutdownWithContext(ctx); err != nil {
					log.Error(ctx, "failed to stop HTTP server", zap.Error(err))
				}
				if redisClient != nil {
					log.Info(ctx, LogClosingCache)
					if err := redisClient.Close(); err != nil {
						log.Error(ctx, "failed to close cache", zap.Error(err))
					}
				}
				log.Info(ctx, LogClosingDB)
				return database.Close(ctx)
			},
		)

		if listenFailed.Load() {
			exitCode = 1
		}
		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

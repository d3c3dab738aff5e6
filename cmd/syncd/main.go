package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/finmirror/finmirror/internal/pkg/config"
	"github.com/finmirror/finmirror/internal/pkg/crypto"
	"github.com/finmirror/finmirror/internal/pkg/database"
	"github.com/finmirror/finmirror/internal/pkg/health"
	"github.com/finmirror/finmirror/internal/pkg/logger"
	"github.com/finmirror/finmirror/internal/pkg/middleware"
	"github.com/finmirror/finmirror/internal/pkg/nsq"
	"github.com/finmirror/finmirror/internal/pkg/server"
	"github.com/finmirror/finmirror/services/sync"
	gatewayhttp "github.com/finmirror/finmirror/services/sync/gateway/http"
	gatewaynsq "github.com/finmirror/finmirror/services/sync/gateway/nsq"
	"github.com/finmirror/finmirror/services/sync/handler"
	"github.com/finmirror/finmirror/services/sync/repository"
	"github.com/finmirror/finmirror/services/sync/usecase"
)

const serviceName = "finmirror-syncd"

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	codec, err := crypto.NewCodec(cfg.Crypto)
	if err != nil {
		zapLogger.Fatal("Failed to initialize field encryption", logger.Err(err))
	}

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Event publishing is optional; without NSQ the pass still runs, it just
	// stays silent
	var eventGW sync.EventGW
	if cfg.NSQ.Enabled {
		producer, err := nsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
		eventGW = gatewaynsq.NewEventGW(producer)
	}

	syncRepo := repository.NewSyncRepo(cfg, pgClient.GetDB(), codec)
	lockRepo := repository.NewSyncLockRepo(cfg, redisClient)
	bankGW := gatewayhttp.NewBankGW(cfg.Bank)
	syncUC := usecase.NewSyncUC(syncRepo, lockRepo, bankGW, eventGW, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)
	handler.RegisterRoutes(e, syncUC, cfg.APIKey)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}

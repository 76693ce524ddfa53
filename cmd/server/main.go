package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/autism-support-api/internal/config"
	"github.com/iliyamo/autism-support-api/internal/logger"
	"github.com/iliyamo/autism-support-api/internal/queue"
	"github.com/iliyamo/autism-support-api/internal/repository"
	"github.com/iliyamo/autism-support-api/internal/router"
	"github.com/iliyamo/autism-support-api/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The store lives for the whole process; nothing survives a restart.
	store := repository.NewStore()
	if err := service.SeedAdmin(ctx, store.Users, cfg.BcryptCost, lg.Named("seed")); err != nil {
		lg.Fatal("seeding admin user failed", zap.Error(err))
	}

	var events service.EventPublisher = queue.Nop{}
	if cfg.AMQPURL != "" {
		events = queue.NewPublisher(cfg.AMQPURL, lg)
		if cfg.AuditConsumer {
			go func() {
				if err := queue.StartAuditConsumer(ctx, cfg.AMQPURL, cfg.AuditLogDir, lg); err != nil && !errors.Is(err, context.Canceled) {
					lg.Error("audit consumer stopped", zap.Error(err))
				}
			}()
		}
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig()) // nil disables rate limiting
	if rdb == nil {
		lg.Info("redis unreachable; rate limiting disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	svc := service.New(store, service.AuthConfig{Secret: cfg.JWTSecret, TTL: cfg.JWTExpiresIn}, events, lg)
	e := router.New(router.Deps{
		Config:    cfg,
		RateLimit: config.LoadRateLimitConfig(),
		Services:  svc,
		Redis:     rdb,
		Log:       lg,
	})

	addr := ":" + cfg.Port
	go func() {
		lg.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", zap.Error(err))
	}
}

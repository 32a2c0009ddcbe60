package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AhmetTK4/harmony/internal/api"
	"github.com/AhmetTK4/harmony/internal/gateway"
	"github.com/AhmetTK4/harmony/internal/infrastructure/config"
	"github.com/AhmetTK4/harmony/internal/infrastructure/db/redis"
	"github.com/AhmetTK4/harmony/internal/session"
	"github.com/AhmetTK4/harmony/pkg/logger"

	_ "github.com/AhmetTK4/harmony/docs"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == config.EnvDevelopment,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session persistence wants Redis; an unreachable Redis degrades the
	// console to memory-backed sessions instead of refusing to start.
	var store session.Store
	if client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, falling back to in-memory sessions")
		store = session.NewMemoryStore()
	} else {
		store = session.NewRedisStore(client)
	}

	addrs := gateway.ResolveAddresses(cfg.Env, gateway.Overrides{
		User:         cfg.Services.UserURL,
		Product:      cfg.Services.ProductURL,
		Order:        cfg.Services.OrderURL,
		Notification: cfg.Services.NotificationURL,
	})
	gw := gateway.New(addrs, log)

	e := api.NewRouter(api.Options{
		Gateway:    gw,
		Sessions:   store,
		SessionTTL: cfg.SessionTTL,
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Msg("harmony console started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("harmony console stopped cleanly")
}

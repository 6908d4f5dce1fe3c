// Command consoled runs the admin console gateway: the single-operator
// backend-for-frontend that owns session state, the remote data cache, and
// role gating in front of the order-management REST backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orderdesk/console/internal/api"
	"github.com/orderdesk/console/internal/cache"
	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
	"github.com/orderdesk/console/internal/core/service"
	"github.com/orderdesk/console/internal/infrastructure/kv"
	"github.com/orderdesk/console/internal/pkg/config"
	"github.com/orderdesk/console/internal/upstream"
	"github.com/orderdesk/console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Durable session store ---
	var store ports.KV
	switch cfg.Session.Store {
	case "memory":
		log.Warn().Msg("using in-memory session store, sessions will not survive restarts")
		store = kv.NewMemory()
	default:
		rdb, err := kv.ConnectRedis(ctx, kv.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		store = kv.NewRedis(rdb)
	}

	// --- Backend client and session ---
	backend := upstream.NewClient(cfg.Backend.BaseURL, log)
	sessions := service.NewSessionService(backend, store, log)
	backend.SetTokenSource(sessions)

	if err := sessions.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting unauthenticated")
	}

	// --- Cache and services ---
	dataCache := cache.NewStore(log)
	// Cached data belongs to the session that fetched it.
	sessions.Subscribe(func(_ *domain.User) {
		for _, category := range []cache.Category{
			cache.CategoryOrders, cache.CategoryClients,
			cache.CategoryEmployees, cache.CategoryAnalytics,
		} {
			dataCache.Invalidate(category)
		}
	})
	deps := api.Deps{
		Sessions:  sessions,
		Orders:    service.NewOrderService(backend, dataCache, log),
		Clients:   service.NewClientService(backend, dataCache, log),
		Users:     service.NewUserService(backend, dataCache, log),
		Dashboard: service.NewDashboardService(backend, dataCache, log),
		Store:     store,
		Logger:    log,
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("console gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// @title MarketPlace Storefront API
// @version 1.0
// @description Catalog search, session reviews and storefront forms
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	session_cache "github.com/Modeva-Ecommerce/marketplace-storefront/cache"
	"github.com/Modeva-Ecommerce/marketplace-storefront/config"
	"github.com/Modeva-Ecommerce/marketplace-storefront/middleware"
	"github.com/Modeva-Ecommerce/marketplace-storefront/routes"
	"github.com/Modeva-Ecommerce/marketplace-storefront/seed"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	watcher, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	cfg := watcher.Get()

	logger, level, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if watcher.EnableHotReload(logger) {
		watcher.Subscribe(config.ApplyLogLevel(level, logger))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	dataset, err := loadDataset(cfg.Seed)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		zap.Int("products", len(dataset.Products)),
		zap.Int("reviews", len(dataset.Reviews)),
	)

	var rateStore middleware.RateStore = middleware.NewMemoryRateStore()
	redisClient, err := config.ConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		rateStore = middleware.NewRedisRateStore(redisClient)
	}

	tokens, err := services.NewSessionTokenService(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return err
	}

	sessions := session_cache.NewStore(dataset.Reviews, session_cache.WithTTL(cfg.Session.TTL))

	router := routes.NewRouter(routes.Dependencies{
		Config:    cfg,
		Catalog:   dataset.Products,
		Sessions:  sessions,
		Tokens:    tokens,
		Activity:  services.NewActivityLogService(logger, services.DefaultActivityCapacity),
		RateStore: rateStore,
		Log:       logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sessions.RunSweeper(gctx, cfg.Session.SweepInterval, func(removed int) {
			if removed > 0 {
				logger.Debug("expired sessions swept", zap.Int("removed", removed), zap.Int("live", sessions.Len()))
			}
		})
		return nil
	})

	g.Go(func() error {
		logger.Info("🚀 server is running", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func loadDataset(cfg config.SeedConfig) (*seed.Dataset, error) {
	if cfg.File != "" {
		return seed.LoadFile(cfg.File)
	}
	return seed.Default()
}

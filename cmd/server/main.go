package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/warzonemc/mars/internal/api"
	"github.com/warzonemc/mars/internal/api/handler"
	"github.com/warzonemc/mars/internal/config"
	"github.com/warzonemc/mars/internal/factory"
	"github.com/warzonemc/mars/internal/leaderboard"
	"github.com/warzonemc/mars/internal/storage/mongo"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mongoCfg := mongo.DefaultConfig()
	mongoCfg.URL = cfg.MongoURL
	mongoCfg.MinPoolSize = cfg.MongoMinPoolSize
	mongoCfg.MaxPoolSize = cfg.MongoMaxPoolSize

	redisCfg := leaderboard.DefaultConfig()
	redisCfg.URL = cfg.RedisURL

	app, err := factory.New(context.Background(), factory.Config{
		Logger:               logger,
		StorageType:          factory.StorageTypeMongo,
		MongoConfig:          &mongoCfg,
		RedisConfig:          &redisCfg,
		UseExponentialXP:     cfg.UseExponentialXP,
		AltLookupConcurrency: cfg.AltLookupConcurrency,
	})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	go app.Leaderboard.Seed(context.Background(), app.Store)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		PlayerStore:     app.Store,
		IdentityService: app.IdentityService,
		Leaderboard:     app.Leaderboard,
		Stores:          []handler.Pinger{app.Store, app.Leaderboard},
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = cfg.ListenAddr
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.String("error", err.Error()))
		}
		if err := app.Close(shutdownCtx); err != nil {
			logger.Error("close error", slog.String("error", err.Error()))
		}
		logger.Info("server stopped")
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/botarena/internal/api"
	"github.com/mcoot/botarena/internal/config"
	"github.com/mcoot/botarena/internal/factory"
	redisstorage "github.com/mcoot/botarena/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validated by config.Load
	level, _ := cfg.SlogLevel()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		DataFile:    cfg.DataFile,
		SQLitePath:  cfg.SQLitePath,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.PoolSize = cfg.RedisPoolSize
		redisCfg.ProfileTTL = cfg.RedisProfileTTL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	logger.Info("storage ready", slog.String("type", cfg.StorageType))
	if cfg.EnableReset {
		logger.Warn("profile reset endpoint enabled")
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		ProfileService:  app.ProfileService,
		FightController: app.FightController,
		StaticDir:       cfg.StaticDir,
		EnableReset:     cfg.EnableReset,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port

	return api.NewServer(router, serverConfig, logger).Run(ctx)
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ordkamp/ordkamp/internal/api"
	"github.com/ordkamp/ordkamp/internal/config"
	"github.com/ordkamp/ordkamp/internal/factory"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	// Local overrides from a .env file, if present
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: string(cfg.Storage.Kind),
	}
	if cfg.Storage.Kind == config.StorageRedis {
		redisCfg := cfg.Storage.Redis
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Prefer the persisted dictionary; fall back to the word file
	if err := app.DictionaryService.LoadFromStorage(context.Background()); err != nil {
		logger.Warn("could not load dictionary from storage", slog.String("error", err.Error()))
	}
	if !app.DictionaryService.IsLoaded() && cfg.Dictionary.WordFile != "" {
		if err := app.DictionaryService.LoadFromFile(context.Background(), cfg.Dictionary.WordFile); err != nil {
			logger.Warn("could not load dictionary from file",
				slog.String("path", cfg.Dictionary.WordFile),
				slog.String("error", err.Error()),
			)
		}
	}
	if !app.DictionaryService.IsLoaded() {
		logger.Warn("dictionary not loaded; moves will be rejected until it is loaded")
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		DictionaryService: app.DictionaryService,
		EventPublisher:    app.EventPublisher,
	})

	serverConfig := api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	server := api.NewServer(router, serverConfig, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	app.EventPublisher.Close()
	logger.Info("server stopped")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

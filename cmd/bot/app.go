package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"telegram-joke-bot/internal/application/usecases"
	"telegram-joke-bot/internal/config"
	"telegram-joke-bot/internal/domain/joke"
	"telegram-joke-bot/internal/infrastructure/filesystem"
	hostinfra "telegram-joke-bot/internal/infrastructure/host"
	"telegram-joke-bot/internal/infrastructure/memory"
	"telegram-joke-bot/internal/infrastructure/persistence"
	"telegram-joke-bot/internal/interfaces/gateway"
	"telegram-joke-bot/internal/interfaces/telegram/handlers"
)

// app holds the wired components shared by all commands
type app struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *sql.DB
	host        *hostinfra.SystemHost
	jokeUseCase *usecases.JokeUseCase
	gateway     *gateway.Gateway
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// newApp loads configuration and wires every component
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}

	// Initialize joke repository
	var repo joke.Repository
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		a.db, err = persistence.NewSQLiteDB(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("initializing database: %w", err)
		}
		repo = persistence.NewJokeRepository(a.db)
	default:
		repo = memory.NewJokeRepository(logger)
	}

	a.host = hostinfra.NewSystemHost(cfg.Bot.ID, nil)

	// Initialize use cases
	a.jokeUseCase = usecases.NewJokeUseCase(repo, a.host, logger)
	infoUseCase := usecases.NewInfoUseCase(a.host, cfg.Bot.Homepages)
	creditUseCase := usecases.NewCreditUseCase(a.host, logger)

	// Load seed jokes
	if cfg.Storage.SeedFile != "" {
		texts, err := filesystem.NewJokeLoader().LoadFromFile(cfg.Storage.SeedFile)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("loading seed jokes: %w", err)
		}
		if _, err := a.jokeUseCase.Seed(ctx, texts); err != nil {
			a.Close()
			return nil, fmt.Errorf("seeding jokes: %w", err)
		}
	}

	botHandler := handlers.NewBotHandler(a.jokeUseCase, infoUseCase, logger)
	a.gateway = gateway.NewGateway(botHandler, infoUseCase, creditUseCase, cfg.Telegram.WebhookSecret, logger)

	return a, nil
}

// Close releases the database and flushes the logger
func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("Failed to close database", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

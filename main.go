package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/susthoma/diabetes-diet-bot/internal/bot"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/handlers"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/state"
	"github.com/susthoma/diabetes-diet-bot/internal/config"
	"github.com/susthoma/diabetes-diet-bot/internal/database"
	"github.com/susthoma/diabetes-diet-bot/internal/logger"
	"github.com/susthoma/diabetes-diet-bot/internal/services"
	"github.com/susthoma/diabetes-diet-bot/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		logger.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Configuration loaded successfully")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	var stateManager state.StateManager
	if cfg.Redis.Enabled() {
		redisManager, err := state.NewRedisManager(cfg.Redis.Host, cfg.Redis.Port)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisManager.Close()
		stateManager = redisManager
		logger.Info("Using Redis state manager")
	} else {
		stateManager = state.NewManager()
		logger.Info("Using in-memory state manager")
	}

	deps := handlers.Dependencies{
		UserService: services.NewUserService(db),
		GlucoseSvc:  services.NewGlucoseService(db),
		Sessions:    session.NewRegistry(),
	}
	logger.Info("Services initialized successfully")

	telegramBot, err := bot.NewBot(cfg.TelegramToken, deps, stateManager)
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Bot is running. Press Ctrl+C to stop.")
	if err := telegramBot.Start(ctx); err != nil && err != context.Canceled {
		logger.Fatalf("Bot stopped with error: %v", err)
	}
}

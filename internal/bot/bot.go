package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/handlers"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/state"
	apperrors "github.com/susthoma/diabetes-diet-bot/internal/errors"
	"github.com/susthoma/diabetes-diet-bot/internal/logger"
	"github.com/susthoma/diabetes-diet-bot/internal/mealplan"
)

type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
	errHandler    *apperrors.Handler
	currentMeal   mealplan.Key
}

// NewBot wires the telegram API to the update handler.
func NewBot(token string, deps handlers.Dependencies, stateManager state.StateManager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Infof("Bot authorized on account %s", api.Self.UserName)
	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps, stateManager),
		errHandler:    apperrors.NewHandler(logger.GetLogger()),
		currentMeal:   mealplan.CurrentKey(time.Now()),
	}, nil
}

// Start runs the long-poll loop until the context is cancelled. A
// minute ticker re-evaluates which meal window is current so menus
// rendered after a transition show the right suggestion.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates...")

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down...")
			return ctx.Err()
		case now := <-ticker.C:
			if key := mealplan.CurrentKey(now); key != b.currentMeal {
				logger.Info("Meal window changed", "from", string(b.currentMeal), "to", string(key))
				b.currentMeal = key
			}
		case update := <-updates:
			if err := b.updateHandler.Handle(ctx, update); err != nil {
				b.errHandler.Handle(ctx, err)
			}
		}
	}
}

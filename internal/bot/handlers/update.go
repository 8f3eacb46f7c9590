package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/state"
	"github.com/susthoma/diabetes-diet-bot/internal/database"
	"github.com/susthoma/diabetes-diet-bot/internal/logger"
)

// UpdateHandler handles telegram updates and coordinates other handlers
type UpdateHandler struct {
	api             *tgbotapi.BotAPI
	deps            Dependencies
	stateManager    state.StateManager
	callbackHandler *CallbackHandler
	commandHandler  *CommandHandler
	textHandler     *TextHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *UpdateHandler {
	return &UpdateHandler{
		api:             api,
		deps:            deps,
		stateManager:    stateManager,
		callbackHandler: NewCallbackHandler(api, deps, stateManager),
		commandHandler:  NewCommandHandler(api, deps, stateManager),
		textHandler:     NewTextHandler(api, deps, stateManager),
	}
}

// Handle processes a telegram update
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	var from *tgbotapi.User
	if update.Message != nil {
		from = update.Message.From
	} else {
		from = update.CallbackQuery.From
	}

	log := logger.WithFields("request_id", uuid.NewString(), "telegram_id", from.ID)

	user, err := h.deps.UserService.RegisterUser(ctx, from.ID, from.UserName, from.FirstName, from.LastName)
	if err != nil {
		log.Error("Failed to register user", "error", err)
		return fmt.Errorf("failed to register user: %w", err)
	}

	if err := h.ensureMirror(ctx, user); err != nil {
		// The session stays empty; the user still gets an answer and a
		// later update retries the fetch.
		log.Error("Failed to load readings mirror", "error", err)
	}

	if update.CallbackQuery != nil {
		log.Debug("Handling callback", "data", update.CallbackQuery.Data)
		return h.callbackHandler.Handle(ctx, update.CallbackQuery, user)
	}

	if update.Message.IsCommand() {
		log.Debug("Handling command", "command", update.Message.Command())
		return h.commandHandler.Handle(ctx, update.Message, user)
	}

	if update.Message.Text != "" {
		return h.textHandler.Handle(ctx, update.Message, user)
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "অনুগ্রহ করে মেনু ব্যবহার করুন।")
	_, err = h.api.Send(msg)
	return err
}

// ensureMirror fills the in-memory readings mirror from the store on
// the session's first contact.
func (h *UpdateHandler) ensureMirror(ctx context.Context, user *database.User) error {
	sess := h.deps.Sessions.Get(user.TelegramID)
	if sess.Loaded() {
		return nil
	}

	records, err := h.deps.GlucoseSvc.GetUserReadings(ctx, user.ID)
	if err != nil {
		return err
	}
	sess.Replace(records)
	return nil
}

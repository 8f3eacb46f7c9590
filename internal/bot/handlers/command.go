package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/menus"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/state"
	"github.com/susthoma/diabetes-diet-bot/internal/database"
	"github.com/susthoma/diabetes-diet-bot/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CommandHandler {
	return &CommandHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	logger.Infof("Handling command %s from user %d", message.Command(), user.ID)

	switch message.Command() {
	case "start":
		h.stateManager.SetUserState(user.TelegramID, state.None)
		h.stateManager.ClearTempData(user.TelegramID)
		if !user.Onboarded() {
			return startOnboarding(h.api, h.stateManager, message.Chat.ID, user)
		}
		return menus.SendMainMenu(h.api, message.Chat.ID, user.DisplayName(), time.Now())
	case "help":
		return h.handleHelp(message.Chat.ID)
	default:
		return h.handleUnknownCommand(message.Chat.ID)
	}
}

// startOnboarding begins the name/age onboarding exchange.
func startOnboarding(api *tgbotapi.BotAPI, stateManager state.StateManager, chatID int64, user *database.User) error {
	stateManager.SetUserState(user.TelegramID, state.OnboardingName)
	msg := tgbotapi.NewMessage(chatID, "স্বাগতম! অ্যাপটি শুরু করার আগে আপনার তথ্য দিন।\n\nআপনার নাম লিখুন (উদা: মা):")
	_, err := api.Send(msg)
	return err
}

// handleHelp handles the /help command
func (h *CommandHandler) handleHelp(chatID int64) error {
	text := `উপলব্ধ কমান্ড:
/start - মূল মেনু দেখুন
/help - এই বার্তা দেখুন

সুগার রিপোর্ট যোগ করতে:
1. "🩸 ট্র্যাকার" বাটনে চাপুন
2. "➕ নতুন রিপোর্ট" বেছে নিন
3. সময়/অবস্থা বেছে নিন (খালি পেটে, নাস্তার পর...)
4. সুগারের পরিমাণ লিখুন (mmol/L), যেমন: "5.6"
   পুরানো তারিখের জন্য: "5.6 2026-08-25"

রিপোর্ট শেয়ার করতে ট্র্যাকার মেনুর "📤 শেয়ার" ব্যবহার করুন।`

	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.api.Send(msg)
	return err
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "অজানা কমান্ড। /help ব্যবহার করুন।")
	_, err := h.api.Send(msg)
	return err
}

package handlers

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/menus"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/state"
	"github.com/susthoma/diabetes-diet-bot/internal/database"
	apperrors "github.com/susthoma/diabetes-diet-bot/internal/errors"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
	"github.com/susthoma/diabetes-diet-bot/internal/logger"
)

// TextHandler handles text messages
type TextHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *TextHandler {
	return &TextHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	userState := h.stateManager.GetUserState(user.TelegramID)

	switch userState {
	case state.OnboardingName:
		return h.handleOnboardingName(message, user)
	case state.OnboardingAge:
		return h.handleOnboardingAge(ctx, message, user)
	case state.WaitingForGlucoseValue:
		return h.handleGlucoseValue(ctx, message, user)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "অনুগ্রহ করে মেনু ব্যবহার করুন। /start দিয়ে শুরু করুন।")
		_, err := h.api.Send(msg)
		return err
	}
}

func (h *TextHandler) handleOnboardingName(message *tgbotapi.Message, user *database.User) error {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		msg := tgbotapi.NewMessage(message.Chat.ID, "সব তথ্য পূরণ করুন। আপনার নাম লিখুন:")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetTempData(user.TelegramID, state.KeyOnboardingName, name)
	h.stateManager.SetUserState(user.TelegramID, state.OnboardingAge)

	msg := tgbotapi.NewMessage(message.Chat.ID, "আপনার বয়স লিখুন:")
	_, err := h.api.Send(msg)
	return err
}

func (h *TextHandler) handleOnboardingAge(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	age, err := strconv.Atoi(strings.TrimSpace(message.Text))
	if err != nil || age <= 0 || age > 130 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "সঠিক বয়স লিখুন (যেমন: 55):")
		_, err := h.api.Send(msg)
		return err
	}

	nameVal, ok := h.stateManager.GetTempData(user.TelegramID, state.KeyOnboardingName)
	if !ok {
		// Restart the exchange rather than guessing the name.
		return startOnboarding(h.api, h.stateManager, message.Chat.ID, user)
	}
	name, _ := nameVal.(string)

	updated, err := h.deps.UserService.UpdateProfile(ctx, user.ID, name, age)
	if err != nil {
		logger.Error("Failed to save profile", "error", err, "user_id", user.ID)
		msg := tgbotapi.NewMessage(message.Chat.ID, "প্রোফাইল সেভ করা যায়নি। আবার চেষ্টা করুন।")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.ClearTempData(user.TelegramID)
	h.stateManager.SetUserState(user.TelegramID, state.None)

	msg := tgbotapi.NewMessage(message.Chat.ID, "প্রোফাইল সেভ হয়েছে! ✅")
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return menus.SendMainMenu(h.api, message.Chat.ID, updated.DisplayName(), time.Now())
}

// handleGlucoseValue finishes the add-reading flow: the text is the
// value in mmol/L, optionally followed by a back-date ("5.6" or
// "5.6 2026-08-25"). Time-of-day always comes from the submission
// moment.
func (h *TextHandler) handleGlucoseValue(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	value, day, err := parseValueInput(message.Text, time.Now())
	if err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "অনুগ্রহ করে সঠিক সুগারের পরিমাণ লিখুন (যেমন: 5.6)")
		_, err := h.api.Send(msg)
		return err
	}

	ctxVal, ok := h.stateManager.GetTempData(user.TelegramID, state.KeyReadingContext)
	if !ok {
		h.stateManager.SetUserState(user.TelegramID, state.None)
		return menus.SendTrackerMenu(h.api, message.Chat.ID)
	}
	readingCtx := glucose.Context(fmt.Sprint(ctxVal))
	if !readingCtx.Valid() {
		readingCtx = glucose.ContextFasting
	}

	record, err := h.deps.GlucoseSvc.AddReading(ctx, user.ID, value, readingCtx, day)
	if err != nil {
		logger.Error("Failed to save reading", "error", err, "user_id", user.ID)
		// Mirror untouched on failure; the user just retries.
		msg := tgbotapi.NewMessage(message.Chat.ID, "রেকর্ড সেভ করা যায়নি। আবার চেষ্টা করুন।")
		_, err := h.api.Send(msg)
		return err
	}

	sess := h.deps.Sessions.Get(user.TelegramID)
	sess.Add(*record)

	h.stateManager.ClearTempData(user.TelegramID)
	h.stateManager.SetUserState(user.TelegramID, state.None)

	insight := glucose.Classify(value, readingCtx)
	text := fmt.Sprintf("✅ রেকর্ড সেভ হয়েছে!\n\n%s: %.1f mmol/L — *%s*\n💡 %s",
		readingCtx, value, insight.Label, insight.Advice)
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "Markdown"
	if _, err := h.api.Send(msg); err != nil {
		return err
	}

	return menus.SendTrackerMenu(h.api, message.Chat.ID)
}

// parseValueInput splits "value" or "value YYYY-MM-DD", validates the
// number is finite, and merges the chosen day with now's clock time.
func parseValueInput(text string, now time.Time) (float64, time.Time, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || len(fields) > 2 {
		return 0, time.Time{}, apperrors.NewValidationError(fmt.Sprintf("expected value with optional date, got %q", text))
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, time.Time{}, apperrors.NewValidationError("invalid glucose value: " + fields[0])
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, time.Time{}, apperrors.NewValidationError("glucose value must be finite")
	}

	day := now
	if len(fields) == 2 {
		parsed, err := time.ParseInLocation("2006-01-02", fields[1], now.Location())
		if err != nil {
			return 0, time.Time{}, apperrors.NewValidationError("invalid date: " + fields[1])
		}
		day = time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
			now.Hour(), now.Minute(), 0, 0, now.Location())
	}

	return value, day, nil
}

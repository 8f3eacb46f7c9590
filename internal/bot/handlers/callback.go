package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/keyboards"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/menus"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/state"
	"github.com/susthoma/diabetes-diet-bot/internal/database"
	apperrors "github.com/susthoma/diabetes-diet-bot/internal/errors"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
	"github.com/susthoma/diabetes-diet-bot/internal/logger"
	"github.com/susthoma/diabetes-diet-bot/internal/mealplan"
	"github.com/susthoma/diabetes-diet-bot/internal/report"
)

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CallbackHandler {
	return &CallbackHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *database.User) error {
	data := query.Data
	chatID := query.Message.Chat.ID

	// Option toggles answer with their own toast; everything else gets
	// the plain acknowledgement that clears the loading spinner.
	if strings.HasPrefix(data, "opt:") {
		return h.handleOptionToggle(query, user, data)
	}

	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		return err
	}

	switch {
	case data == "main_menu":
		h.stateManager.SetUserState(user.TelegramID, state.None)
		h.stateManager.ClearTempData(user.TelegramID)
		return menus.SendMainMenu(h.api, chatID, user.DisplayName(), time.Now())

	case data == "diet":
		sess := h.deps.Sessions.Get(user.TelegramID)
		return menus.SendCurrentMeal(h.api, chatID, time.Now(), sess)

	case data == "diet_menu":
		return menus.SendDietMenu(h.api, chatID)

	case data == "routine":
		return menus.SendRoutine(h.api, chatID)

	case data == "foods_safe":
		return menus.SendFoodList(h.api, chatID, true)

	case data == "foods_avoid":
		return menus.SendFoodList(h.api, chatID, false)

	case data == "tracker":
		h.stateManager.SetUserState(user.TelegramID, state.None)
		return menus.SendTrackerMenu(h.api, chatID)

	case data == "add_reading":
		msg := tgbotapi.NewMessage(chatID, "সময়/অবস্থা বেছে নিন:")
		msg.ReplyMarkup = keyboards.ContextMenu()
		_, err := h.api.Send(msg)
		return err

	case strings.HasPrefix(data, "ctx:"):
		return h.handleContextChosen(chatID, user, data)

	case strings.HasPrefix(data, "range:"):
		return h.handleRange(chatID, user, data)

	case data == "history":
		sess := h.deps.Sessions.Get(user.TelegramID)
		return menus.SendHistory(h.api, chatID, sess.Readings())

	case strings.HasPrefix(data, "del:"):
		return h.handleDeleteRequest(chatID, data)

	case strings.HasPrefix(data, "delcfm:"):
		return h.handleDeleteConfirmed(ctx, chatID, user, data)

	case data == "share":
		return h.handleShare(chatID, user)

	case data == "info":
		sess := h.deps.Sessions.Get(user.TelegramID)
		return menus.SendInfoTab(h.api, chatID, user, sess)

	case data == "onboarding":
		return startOnboarding(h.api, h.stateManager, chatID, user)
	}

	logger.Warn("Unknown callback data", "data", data)
	return nil
}

// handleOptionToggle flips one meal-plan selection and refreshes the
// keyboard under the same message.
func (h *CallbackHandler) handleOptionToggle(query *tgbotapi.CallbackQuery, user *database.User, data string) error {
	parts := strings.Split(data, ":")
	if len(parts) != 4 {
		return fmt.Errorf("malformed option callback: %q", data)
	}

	meal := mealplan.Get(mealplan.Key(parts[1]))
	ci, err1 := strconv.Atoi(parts[2])
	oi, err2 := strconv.Atoi(parts[3])
	if err1 != nil || err2 != nil || ci < 0 || ci >= len(meal.Categories) {
		return fmt.Errorf("malformed option callback: %q", data)
	}
	cat := meal.Categories[ci]
	if oi < 0 || oi >= len(cat.Options) {
		return fmt.Errorf("malformed option callback: %q", data)
	}

	sess := h.deps.Sessions.Get(user.TelegramID)
	selected := sess.ToggleSelection(cat.Name, cat.Options[oi])

	toast := "বাদ দেওয়া হয়েছে"
	if selected {
		toast = "✅ বেছে নেওয়া হয়েছে"
	}
	callback := tgbotapi.NewCallback(query.ID, toast)
	if _, err := h.api.Request(callback); err != nil {
		return err
	}

	markup := keyboards.MealOptions(meal, sess)
	edit := tgbotapi.NewEditMessageReplyMarkup(query.Message.Chat.ID, query.Message.MessageID, markup)
	_, err := h.api.Send(edit)
	return err
}

func (h *CallbackHandler) handleContextChosen(chatID int64, user *database.User, data string) error {
	idx, err := strconv.Atoi(strings.TrimPrefix(data, "ctx:"))
	if err != nil || idx < 0 || idx >= len(glucose.Contexts) {
		return fmt.Errorf("malformed context callback: %q", data)
	}

	h.stateManager.SetTempData(user.TelegramID, state.KeyReadingContext, string(glucose.Contexts[idx]))
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForGlucoseValue)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ বাতিল", "tracker"),
		),
	)
	msg := tgbotapi.NewMessage(chatID, "সুগারের পরিমাণ লিখুন (mmol/L), যেমন: 5.6\nপুরানো তারিখের জন্য: 5.6 2026-08-25")
	msg.ReplyMarkup = keyboard
	_, err = h.api.Send(msg)
	return err
}

func (h *CallbackHandler) handleRange(chatID int64, user *database.User, data string) error {
	window := glucose.Window(strings.TrimPrefix(data, "range:"))
	switch window {
	case glucose.WindowDay, glucose.WindowWeek, glucose.WindowMonth:
	default:
		return fmt.Errorf("malformed range callback: %q", data)
	}

	sess := h.deps.Sessions.Get(user.TelegramID)
	result := glucose.Aggregate(sess.Readings(), window, time.Now())
	return menus.SendStats(h.api, chatID, window, result)
}

// handleDeleteRequest is step one of deletion: ask for confirmation.
func (h *CallbackHandler) handleDeleteRequest(chatID int64, data string) error {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, "del:"), 10, 32)
	if err != nil {
		return fmt.Errorf("malformed delete callback: %q", data)
	}

	msg := tgbotapi.NewMessage(chatID, "রেকর্ডটি মুছে ফেলবেন?")
	msg.ReplyMarkup = keyboards.DeleteConfirm(uint(id))
	_, err = h.api.Send(msg)
	return err
}

// handleDeleteConfirmed is step two: delete from the store, then drop
// the reading from the mirror. A failed store call leaves the mirror
// untouched.
func (h *CallbackHandler) handleDeleteConfirmed(ctx context.Context, chatID int64, user *database.User, data string) error {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, "delcfm:"), 10, 32)
	if err != nil {
		return fmt.Errorf("malformed delete callback: %q", data)
	}

	if err := h.deps.GlucoseSvc.DeleteReading(ctx, user.ID, uint(id)); err != nil {
		if !errors.Is(err, apperrors.ErrReadingNotFound) {
			logger.Error("Failed to delete reading", "error", err, "user_id", user.ID, "reading_id", id)
			msg := tgbotapi.NewMessage(chatID, "রেকর্ড মুছে ফেলা যায়নি। আবার চেষ্টা করুন।")
			_, err := h.api.Send(msg)
			return err
		}
		// Already gone from the store; fall through so the mirror
		// catches up too.
	}

	sess := h.deps.Sessions.Get(user.TelegramID)
	sess.Remove(uint(id))

	msg := tgbotapi.NewMessage(chatID, "রেকর্ড মুছে ফেলা হয়েছে 🗑️")
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return menus.SendHistory(h.api, chatID, sess.Readings())
}

// handleShare builds the plain-text report and drops it into the chat;
// forwarding it is Telegram's share surface.
func (h *CallbackHandler) handleShare(chatID int64, user *database.User) error {
	sess := h.deps.Sessions.Get(user.TelegramID)
	readings := sess.Readings()
	if len(readings) == 0 {
		msg := tgbotapi.NewMessage(chatID, "শেয়ার করার জন্য কোনো রেকর্ড নেই")
		_, err := h.api.Send(msg)
		return err
	}

	stats := glucose.ComputeStats(readings)
	text := report.BuildShareText(user.DisplayName(), readings, stats.Avg)
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.api.Send(msg)
	return err
}

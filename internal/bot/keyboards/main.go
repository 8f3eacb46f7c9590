package keyboards

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
	"github.com/susthoma/diabetes-diet-bot/internal/mealplan"
	"github.com/susthoma/diabetes-diet-bot/internal/session"
)

// MainMenu creates the main menu keyboard (the three tabs)
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍽️ ডায়েট", "diet"),
			tgbotapi.NewInlineKeyboardButtonData("🩸 ট্র্যাকার", "tracker"),
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ তথ্য", "info"),
		),
	)
}

// DietMenu creates the diet tab keyboard
func DietMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🕒 সারাদিনের রুটিন", "routine"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ উপকারী খাবার", "foods_safe"),
			tgbotapi.NewInlineKeyboardButtonData("🚫 বর্জনীয় খাবার", "foods_avoid"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ মূল মেনু", "main_menu"),
		),
	)
}

// MealOptions builds the option toggle keyboard for one meal; selected
// options carry a check mark. Callback data encodes meal key plus
// category and option indexes.
func MealOptions(meal mealplan.Meal, sess *session.Session) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for ci, cat := range meal.Categories {
		for oi, opt := range cat.Options {
			label := opt
			if sess.IsSelected(cat.Name, opt) {
				label = "✅ " + opt
			}
			data := fmt.Sprintf("opt:%s:%d:%d", meal.Key, ci, oi)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, data),
			))
		}
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ ডায়েট মেনু", "diet_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// TrackerMenu creates the tracker tab keyboard
func TrackerMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ নতুন রিপোর্ট", "add_reading"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("দিন", "range:day"),
			tgbotapi.NewInlineKeyboardButtonData("সপ্তাহ", "range:week"),
			tgbotapi.NewInlineKeyboardButtonData("মাস", "range:month"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📜 পুরানো রিপোর্ট", "history"),
			tgbotapi.NewInlineKeyboardButtonData("📤 শেয়ার", "share"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ মূল মেনু", "main_menu"),
		),
	)
}

// ContextMenu lets the user pick the measurement context for a new
// reading.
func ContextMenu() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, ctx := range glucose.Contexts {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(string(ctx), fmt.Sprintf("ctx:%d", i)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ ট্র্যাকার", "tracker"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// HistoryMenu lists recent readings with a delete button each.
func HistoryMenu(readings []glucose.Reading) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, r := range readings {
		label := fmt.Sprintf("🗑️ %s %.1f (%s)", r.RecordedAt.Format("02/01"), r.Value, r.Context)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("del:%d", r.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ ট্র্যাকার", "tracker"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// DeleteConfirm is the second step of deletion: an explicit yes/no.
func DeleteConfirm(readingID uint) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("হ্যাঁ", fmt.Sprintf("delcfm:%d", readingID)),
			tgbotapi.NewInlineKeyboardButtonData("না", "history"),
		),
	)
}

// InfoMenu creates the info tab keyboard
func InfoMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 প্রোফাইল আপডেট", "onboarding"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ মূল মেনু", "main_menu"),
		),
	)
}

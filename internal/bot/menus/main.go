package menus

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/susthoma/diabetes-diet-bot/internal/bot/keyboards"
	"github.com/susthoma/diabetes-diet-bot/internal/database"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
	"github.com/susthoma/diabetes-diet-bot/internal/mealplan"
	"github.com/susthoma/diabetes-diet-bot/internal/report"
	"github.com/susthoma/diabetes-diet-bot/internal/session"
)

// historyLimit caps how many readings the history screen lists.
const historyLimit = 10

// SendMainMenu sends the main menu with the current meal window.
func SendMainMenu(api *tgbotapi.BotAPI, chatID int64, name string, now time.Time) error {
	meal := mealplan.Current(now)
	text := fmt.Sprintf(`🌿 *সুস্থ %s*
ডায়াবেটিক ডায়েট গাইড (বাংলাদেশ)

🕒 এখন: %s
🍽️ %s — %s

⚠️ চিকিৎসকের পরামর্শ অনুযায়ী তৈরি।

কী দেখতে চান?`, name, now.Format("15:04"), meal.TimeRange, meal.Title)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendCurrentMeal sends the diet tab: the current meal suggestion with
// its selectable options.
func SendCurrentMeal(api *tgbotapi.BotAPI, chatID int64, now time.Time, sess *session.Session) error {
	meal := mealplan.Current(now)

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ *%s*\n%s\n\n", meal.Title, meal.TimeRange)
	for _, cat := range meal.Categories {
		fmt.Fprintf(&b, "• *%s:* %s\n", cat.Name, cat.Items)
	}
	b.WriteString("\nপছন্দের খাবার বেছে নিন:")

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MealOptions(meal, sess)
	_, err := api.Send(msg)
	return err
}

// SendDietMenu sends the diet tab overview keyboard.
func SendDietMenu(api *tgbotapi.BotAPI, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "ডায়েট গাইড:")
	msg.ReplyMarkup = keyboards.DietMenu()
	_, err := api.Send(msg)
	return err
}

// SendRoutine sends the full daily meal routine.
func SendRoutine(api *tgbotapi.BotAPI, chatID int64) error {
	var b strings.Builder
	b.WriteString("🕒 *সারাদিনের খাবারের রুটিন*\n\n")
	for _, meal := range mealplan.Meals {
		fmt.Fprintf(&b, "*%s*\n%s\n%s\n\n", meal.TimeRange, meal.Title, meal.Summary)
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.DietMenu()
	_, err := api.Send(msg)
	return err
}

// SendFoodList sends the safe or avoid reference list.
func SendFoodList(api *tgbotapi.BotAPI, chatID int64, safe bool) error {
	var b strings.Builder
	items := mealplan.AvoidFoods
	if safe {
		items = mealplan.SafeFoods
		b.WriteString("✅ *উপকারী খাবার*\n\n")
	} else {
		b.WriteString("🚫 *বর্জনীয় খাবার*\n\n")
	}
	for _, item := range items {
		fmt.Fprintf(&b, "*%s:* %s\n\n", item.Title, item.Description)
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.DietMenu()
	_, err := api.Send(msg)
	return err
}

// SendTrackerMenu sends the tracker tab.
func SendTrackerMenu(api *tgbotapi.BotAPI, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "🩸 সুগার ট্র্যাকার — কী করতে চান?")
	msg.ReplyMarkup = keyboards.TrackerMenu()
	_, err := api.Send(msg)
	return err
}

// SendStats sends the stats panel and text trend for one window.
func SendStats(api *tgbotapi.BotAPI, chatID int64, window glucose.Window, result glucose.Result) error {
	names := map[glucose.Window]string{
		glucose.WindowDay:   "দিন",
		glucose.WindowWeek:  "সপ্তাহ",
		glucose.WindowMonth: "মাস",
	}

	text := fmt.Sprintf("📊 *%s*\n%s\n\n```\n%s\n```",
		names[window],
		report.FormatStats(result.Stats),
		report.RenderSeries(result.Series),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.TrackerMenu()
	_, err := api.Send(msg)
	return err
}

// SendHistory lists recent readings with their classification, each
// with a delete button.
func SendHistory(api *tgbotapi.BotAPI, chatID int64, readings []glucose.Reading) error {
	if len(readings) == 0 {
		msg := tgbotapi.NewMessage(chatID, "কোনো রিপোর্ট পাওয়া যায়নি")
		msg.ReplyMarkup = keyboards.TrackerMenu()
		_, err := api.Send(msg)
		return err
	}

	if len(readings) > historyLimit {
		readings = readings[:historyLimit]
	}

	var b strings.Builder
	b.WriteString("📜 *পুরানো রিপোর্ট*\n\n")
	for _, r := range readings {
		insight := glucose.Classify(r.Value, r.Context)
		fmt.Fprintf(&b, "%s (%s) — %s: %.1f mmol/L [%s]\n",
			r.RecordedAt.Format("02/01/2006"),
			r.RecordedAt.Format("15:04"),
			r.Context,
			r.Value,
			insight.Label,
		)
	}
	b.WriteString("\nমুছতে চাইলে নিচের বাটন চাপুন:")

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.HistoryMenu(readings)
	_, err := api.Send(msg)
	return err
}

// SendInfoTab sends the profile summary, latest insight, and the
// emergency and lifestyle notes.
func SendInfoTab(api *tgbotapi.BotAPI, chatID int64, user *database.User, sess *session.Session) error {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 *%s*", user.DisplayName())
	if user.Age > 0 {
		fmt.Fprintf(&b, " — %d বছর", user.Age)
	}
	b.WriteString("\n🎯 লক্ষ্য (খালি পেটে): ৪.০ - ৬.১ mmol/L\n\n")

	if latest, ok := sess.Latest(); ok {
		insight := glucose.Classify(latest.Value, latest.Context)
		fmt.Fprintf(&b, "🔎 *সর্বশেষ রিপোর্টের বিশ্লেষণ*\n%s-এ সুগারের পরিমাণ %.1f mmol/L, যা %s।\n💡 %s\n\n",
			latest.Context, latest.Value, insight.Label, insight.Advice)
	}

	b.WriteString("⚠️ *জরুরি সতর্কতা*\n")
	b.WriteString("• সুগার কমে গেলে (হাইপোগ্লাইসেমিয়া): অতিরিক্ত ঘাম, বুক ধড়ফড়, বা মাথা ঘুরলে দ্রুত ১ চামচ চিনি বা গ্লুকোজ খান।\n")
	b.WriteString("• নিয়মিত হাঁটা: প্রতিদিন অন্তত ৩০ মিনিট দ্রুত হাঁটার চেষ্টা করুন।\n\n")

	b.WriteString("🌿 *জীবনযাত্রা*\n")
	for _, tip := range mealplan.LifestyleTips {
		fmt.Fprintf(&b, "• %s\n", tip)
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.InfoMenu()
	_, err := api.Send(msg)
	return err
}

// Package mealplan holds the static Bengali diet reference data: the
// seven meal windows of the day with their selectable food options, the
// safe/avoid food lists, and the lifestyle tips. None of it is per-user
// data; only the user's option selections live elsewhere (in the
// session).
package mealplan

import "time"

// Key identifies one meal window of the day.
type Key string

const (
	VeryEarly   Key = "very_early"
	Breakfast   Key = "breakfast"
	MidMorning  Key = "mid_morning"
	Lunch       Key = "lunch"
	Evening     Key = "evening"
	Dinner      Key = "dinner"
	BeforeSleep Key = "before_sleep"
)

// Category is one food group within a meal, with its selectable options.
type Category struct {
	Name    string
	Items   string
	Options []string
}

// Meal is a single time-of-day meal recommendation.
type Meal struct {
	Key        Key
	TimeRange  string
	Title      string
	Summary    string
	Categories []Category
}

// window is one entry of the current-meal lookup table, in minutes
// since midnight. End is exclusive.
type window struct {
	start int
	end   int
	key   Key
}

// windows covers 05:00 through 22:30; anything outside falls through to
// before_sleep.
var windows = []window{
	{5 * 60, 8 * 60, VeryEarly},
	{8 * 60, 11 * 60, Breakfast},
	{11 * 60, 13*60 + 30, MidMorning},
	{13*60 + 30, 17 * 60, Lunch},
	{17 * 60, 20*60 + 30, Evening},
	{20*60 + 30, 22*60 + 30, Dinner},
}

// CurrentKey returns the meal window that t falls into.
func CurrentKey(t time.Time) Key {
	minutes := t.Hour()*60 + t.Minute()
	for _, w := range windows {
		if minutes >= w.start && minutes < w.end {
			return w.key
		}
	}
	return BeforeSleep
}

// Current returns the meal recommendation for the window t falls into.
func Current(t time.Time) Meal {
	return Get(CurrentKey(t))
}

// Get returns the meal for a key. Unknown keys return the breakfast
// meal so callers always have something to show.
func Get(key Key) Meal {
	for _, m := range Meals {
		if m.Key == key {
			return m
		}
	}
	return Meals[1]
}

// Meals lists all meal windows in chronological order.
var Meals = []Meal{
	{
		Key:       VeryEarly,
		TimeRange: "খুব সকালে (ঘুম থেকে ওঠার পর)",
		Title:     "ডিটক্স পানি",
		Summary:   "১ গ্লাস কুসুম গরম পানি বা মেথি/দারুচিনি পানি (সুগার নিয়ন্ত্রণে সাহায্য করে)।",
		Categories: []Category{
			{Name: "পানীয়", Items: "১ গ্লাস হালকা কুসুম গরম পানি।", Options: []string{"কুসুম গরম পানি", "মেথি-ভেজানো পানি", "দারুচিনি পানি", "চিয়া সিড পানি"}},
		},
	},
	{
		Key:       Breakfast,
		TimeRange: "সকাল (৮:০০ - ৮:৩০)",
		Title:     "সকালের নাস্তা",
		Summary:   "লাল আটার রুটি বা ডালিয়া, মিক্সড সবজি এবং ১টি ডিমের সাদা অংশ (সেদ্ধ বা ভাজি)।",
		Categories: []Category{
			{Name: "শর্করা", Items: "লাল আটার পাতলা রুটি বা ডালিয়া।", Options: []string{"২টি লাল আটার রুটি", "ওটস (চিনি ছাড়া)", "ডালিয়া খিচুড়ি", "যবের ছাতু"}},
			{Name: "সবজি", Items: "অল্প তেলে রান্না করা মিক্সড সবজি।", Options: []string{"লাউ ভাজি", "পেঁপে ভাজি", "কাঁকরোল ভাজি", "পটল ভাজি", "করলা ভাজি", "ঝিঙে সবজি"}},
			{Name: "প্রোটিন", Items: "ডিমের সাদা অংশ বা পনির (অল্প)।", Options: []string{"১টি ডিমের সাদা অংশ", "২টি ডিমের সাদা অংশ", "অল্প পনির (লো-ফ্যাট)"}},
		},
	},
	{
		Key:       MidMorning,
		TimeRange: "মধ্য দুপুর (১১:০০ - ১১:৩০)",
		Title:     "হালকা খাবার (মিস করবেন না)",
		Summary:   "যেকোনো ১টি টক ফল (পেয়ারা/আপেল/নাশপাতি) অথবা সুগার ফ্রি বিস্কুট / মুড়ি।",
		Categories: []Category{
			{Name: "ফল", Items: "টক জাতীয় বা কম মিষ্টির ফল।", Options: []string{"পেয়ারা", "আমড়া", "বাতাবি লেবু", "আপেল", "নাশপাতি", "ড্রাগন ফল", "মাল্টা"}},
			{Name: "বিকল্প", Items: "সুগার ফ্রি বিস্কুট বা মুড়ি।", Options: []string{"মেরি বিস্কুট (সুগার ফ্রী)", "এক মুষ্টি মুড়ি", "শসা"}},
		},
	},
	{
		Key:       Lunch,
		TimeRange: "দুপুর (১:৩০ - ২:০০)",
		Title:     "দুপুরের খাবার",
		Summary:   "পরিমাণমতো লাল চালের ভাত, প্রচুর শাক-সবজি, মাছ বা মুরগি এবং পাতলা ডাল।",
		Categories: []Category{
			{Name: "শর্করা", Items: "লাল চালের ভাত (পরিমাণমতো)।", Options: []string{"১ কাপ লাল চালের ভাত", "১.৫ কাপ লাল চালের ভাত"}},
			{Name: "সবজি", Items: "প্রচুর পরিমাণে শাক ও সবজি।", Options: []string{"লাল শাক", "পালং শাক", "কলমি শাক", "পটল", "কাঁকরোল", "ঝিঙে", "শসা-টমেটো সালাদ"}},
			{Name: "প্রোটিন", Items: "মাছ বা চামড়া ছাড়া মুরগির মাংস।", Options: []string{"মাছ (১ টুকরো)", "মুরগির মাংস (২ টুকরো)", "সামুদ্রিক মাছ"}},
			{Name: "ডাল", Items: "১ কাপ পাতলা ডাল।", Options: []string{"পাতলা ডাল (১ কাপ)", "মুগ ডাল (অল্প)"}},
		},
	},
	{
		Key:       Evening,
		TimeRange: "বিকাল (৫:০০ - ৫:৩০)",
		Title:     "বিকালের নাস্তা",
		Summary:   "চিনি ছাড়া চা সাথে অল্প ভাজা ছোলা বা কাঠবাদাম/আখরোট। তেলে ভাজা খাবার বর্জনীয়।",
		Categories: []Category{
			{Name: "পানীয়", Items: "চিনি ছাড়া চা বা তোকমা পানি।", Options: []string{"রঙ চা (চিনি ছাড়া)", "দুধ চা (চিনি ছাড়া)", "তোকমা দানা পানি"}},
			{Name: "স্ন্যাকস", Items: "বাদাম বা সিদ্ধ ছোলা।", Options: []string{"ভাজা ছোলা", "কাঠবাদাম", "আখরোট", "সিদ্ধ ছোলা", "মরিচ-মুড়ি (অল্প)"}},
		},
	},
	{
		Key:       Dinner,
		TimeRange: "রাত (৮:৩০ - ৯:০০)",
		Title:     "রাতের খাবার",
		Summary:   "লাল আটার রুটি, করলা ভাজি বা সজনে ডাটা সবজি এবং ১ টুকরো মাছ।",
		Categories: []Category{
			{Name: "শর্করা", Items: "লাল আটার রুটি (ভাতের বদলে)।", Options: []string{"২টি লাল আটার রুটি", "অল্প ভাত"}},
			{Name: "সবজি", Items: "সবজি বা সজনে ডাটা।", Options: []string{"করলা ভাজি", "ঝিঙে ভাজি", "পেঁপে ভাজি", "সজনে ডাটা সবজি", "চাল কুমড়ো", "ধুন্দল"}},
			{Name: "প্রোটিন", Items: "১ টুকরো মাছ।", Options: []string{"মাছ (১ টুকরো)", "মুরগির মাংস (১ টুকরো)"}},
		},
	},
	{
		Key:       BeforeSleep,
		TimeRange: "ঘুমানোর আগে (১০:৩০ - ১১:০০)",
		Title:     "জরুরি স্ন্যাকস (ইনসুলিন নিলে এটি জরুরি)",
		Summary:   "হাফ কাপ ফ্যাট-ফ্রি দুধ অথবা ১-২টি বিস্কুট (রাতে সুগার কমে যাওয়া রোধে জরুরি)।",
		Categories: []Category{
			{Name: "পানীয়/স্ন্যাকস", Items: "ফ্যাট-ফ্রি দুধ বা অল্প বিস্কুট।", Options: []string{"হাফ কাপ দুধ", "১-২টি বিস্কুট", "২টি আখরোট"}},
		},
	},
}

// FoodItem is one entry in the safe or avoid reference lists.
type FoodItem struct {
	Title       string
	Description string
}

// SafeFoods lists food groups recommended for a diabetic diet.
var SafeFoods = []FoodItem{
	{"শর্করা", "লাল চাল, লাল আটা, ওটস, ডালিয়া, যব, বার্লি।"},
	{"সবজি", "লাউ, পেঁপে, ফুলকপি, করলা, ঝিঙে, পটল, কাঁকরোল, চাল কুমড়ো, ধুন্দল।"},
	{"আঁশযুক্ত ও ফল", "ঢেঁড়স, সজনে ডাটা, পেয়ারা, আমড়া, বাতাবি লেবু, আপেল, নাশপাতি, ড্রাগন ফল।"},
	{"প্রোটিন", "মাছ, চামড়া ছাড়া মুরগি, ডিমের সাদা অংশ, বাদাম, লো-ফ্যাট দুধ।"},
}

// AvoidFoods lists food groups to stay away from.
var AvoidFoods = []FoodItem{
	{"মিষ্টি ও ফ্যাট", "চিনি, গুড়, মধু, গ্লুকোজ, মিষ্টি, ঘি, মাখন, ডালডা, ডালডা-জাত খাবার।"},
	{"উচ্চ চর্বি আমিষ", "গরু-খাসির মাংস, হাঁসের মাংস, কলিজা, মগজ, ডিমের কুসুম, বড় চিংড়ি।"},
	{"উচ্চ শর্করা ও ভাজা", "সাদা চাল, ময়দা, আলু, মিষ্টি আলু, গাজর, পরোটা, ভাজাপোড়া (সিঙ্গারা, পুরি), কোমল পানীয়।"},
}

// LifestyleTips lists general daily habits shown on the info screen.
var LifestyleTips = []string{
	"পর্যাপ্ত পানি পান করুন (দৈনিক ৮-১০ গ্লাস)।",
	"একটানা বসে না থেকে সচল থাকুন।",
	"মানসিক চাপ মুক্ত থাকার চেষ্টা করুন।",
	"নির্দিষ্ট সময়ে খাবার গ্রহণ করুন।",
}

package glucose

import "time"

// Context represents the metabolic condition a reading was taken under.
type Context string

const (
	ContextFasting       Context = "খালি পেটে"
	ContextPostBreakfast Context = "নাস্তার পর"
	ContextPostLunch     Context = "দুপুরের পর"
	ContextPostDinner    Context = "রাতের পর"
)

// Contexts lists the selectable measurement contexts in display order.
var Contexts = []Context{
	ContextFasting,
	ContextPostBreakfast,
	ContextPostLunch,
	ContextPostDinner,
}

// IsFasting reports whether the context is a fasting measurement.
func (c Context) IsFasting() bool {
	return c == ContextFasting
}

// Valid reports whether c is one of the known contexts.
func (c Context) Valid() bool {
	for _, known := range Contexts {
		if c == known {
			return true
		}
	}
	return false
}

// Band is the classification tier assigned to a reading.
type Band string

const (
	BandLow     Band = "low"
	BandGood    Band = "good"
	BandWarning Band = "warning"
	BandBad     Band = "bad"
)

// Reading is a single blood glucose measurement in mmol/L.
type Reading struct {
	ID         uint
	Value      float64
	Context    Context
	RecordedAt time.Time
}

// Insight is the classification result for a reading.
type Insight struct {
	Band   Band
	Label  string
	Advice string
}

// Band boundaries in mmol/L. Boundary values belong to the lower band.
const (
	fastingLowBelow     = 4.0
	fastingGoodUpTo     = 6.1
	fastingWarningUpTo  = 6.9
	postMealLowBelow    = 4.4
	postMealGoodUpTo    = 7.8
	postMealWarningUpTo = 11.0
)

// Classify maps a finite glucose value and its measurement context to a
// band with the matching label and advice. Callers validate the number
// before calling; Classify itself never fails.
func Classify(value float64, ctx Context) Insight {
	if ctx.IsFasting() {
		switch {
		case value < fastingLowBelow:
			return Insight{BandLow, "নিম্ন", "দ্রুত ১ চামচ চিনি বা গ্লুকোজ খান। খাবার গ্রহণ করুন।"}
		case value <= fastingGoodUpTo:
			return Insight{BandGood, "সঠিক", "আপনার সুগার লেভেল নিয়ন্ত্রণে আছে। নিয়মিত ডায়েট অনুসরণ করুন।"}
		case value <= fastingWarningUpTo:
			return Insight{BandWarning, "প্রি-ডায়াবেটিস", "মিষ্টি জাতীয় খাবার এড়িয়ে চলুন এবং ৩০ মিনিট হাঁটুন।"}
		default:
			return Insight{BandBad, "উচ্চ", "প্রচুর পানি পান করুন এবং শর্করা জাতীয় খাবার এড়িয়ে চলুন। চিকিৎসকের পরামর্শ নিন।"}
		}
	}

	switch {
	case value < postMealLowBelow:
		return Insight{BandLow, "নিম্ন", "সুগার অনেক কমে গেছে। দ্রুত কিছু খেয়ে নিন।"}
	case value <= postMealGoodUpTo:
		return Insight{BandGood, "সঠিক", "খাবার পরবর্তী সুগার লেভেল ঠিক আছে। সচল থাকুন।"}
	case value <= postMealWarningUpTo:
		return Insight{BandWarning, "সতর্কতা", "পরের বেলা খাবারে ভাতের পরিমাণ কমিয়ে দিন। ২০ মিনিট হাঁটুন।"}
	default:
		return Insight{BandBad, "অত্যধিক উচ্চ", "অতিরিক্ত শর্করা পরিহার করুন। প্রয়োজনে চিকিৎসকের সাথে যোগাযোগ করুন।"}
	}
}

// Package report builds the plain-text artifacts the bot hands out: the
// shareable line-per-reading report and a text rendition of a trend
// series. Plain text is the only export format.
package report

import (
	"fmt"
	"strings"

	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
)

const maxBarWidth = 12

// BuildShareText assembles the share report: one line per reading
// (newest first, as displayed) plus a mean summary line.
func BuildShareText(name string, readings []glucose.Reading, avg float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-র ডায়াবেটিস রিপোর্ট:\n\n", name)
	for _, r := range readings {
		fmt.Fprintf(&b, "%s (%s) - %s: %.1f mmol/L\n",
			r.RecordedAt.Format("02/01/2006"),
			r.RecordedAt.Format("15:04"),
			r.Context,
			r.Value,
		)
	}
	fmt.Fprintf(&b, "\nগড় সুগার: %.1f mmol/L", avg)
	return b.String()
}

// RenderSeries draws a series as horizontal bars, one line per point.
// Bars are scaled to the largest value so the trend reads at a glance
// in a monospace chat bubble.
func RenderSeries(series []glucose.Point) string {
	if len(series) == 0 {
		return "কোনো রিপোর্ট পাওয়া যায়নি"
	}

	max := series[0].Value
	for _, p := range series {
		if p.Value > max {
			max = p.Value
		}
	}

	var b strings.Builder
	for i, p := range series {
		width := 1
		if max > 0 {
			width = int(p.Value / max * maxBarWidth)
			if width < 1 {
				width = 1
			}
		}
		fmt.Fprintf(&b, "%s %s %.1f", p.Label, strings.Repeat("▇", width), p.Value)
		if i < len(series)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatStats renders the stats panel for a window.
func FormatStats(stats glucose.Stats) string {
	return fmt.Sprintf("গড়: %.1f | সর্বোচ্চ: %.1f | সর্বনিম্ন: %.1f", stats.Avg, stats.Max, stats.Min)
}

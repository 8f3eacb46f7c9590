package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
)

func TestBuildShareText(t *testing.T) {
	recordedAt := time.Date(2026, time.August, 30, 8, 15, 0, 0, time.Local)
	readings := []glucose.Reading{
		{Value: 5.6, Context: glucose.ContextFasting, RecordedAt: recordedAt},
	}

	text := BuildShareText("মা", readings, 5.6)

	assert.Contains(t, text, "মা-র ডায়াবেটিস রিপোর্ট:")
	assert.Contains(t, text, "30/08/2026 (08:15) - খালি পেটে: 5.6 mmol/L")
	assert.True(t, strings.HasSuffix(text, "গড় সুগার: 5.6 mmol/L"))
}

func TestRenderSeries(t *testing.T) {
	out := RenderSeries([]glucose.Point{
		{Label: "08:00", Value: 4.0},
		{Label: "13:00", Value: 8.0},
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "08:00")
	assert.Contains(t, lines[1], "13:00")
	// The larger value gets the longer bar.
	assert.Greater(t, strings.Count(lines[1], "▇"), strings.Count(lines[0], "▇"))
}

func TestRenderSeriesEmpty(t *testing.T) {
	assert.Equal(t, "কোনো রিপোর্ট পাওয়া যায়নি", RenderSeries(nil))
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(glucose.Stats{Avg: 6.2, Max: 7.1, Min: 5.2})
	assert.Equal(t, "গড়: 6.2 | সর্বোচ্চ: 7.1 | সর্বনিম্ন: 5.2", out)
}

package glucose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	require.NoError(t, err)
	return ts
}

func TestAggregateDayWindow(t *testing.T) {
	now := mustTime(t, "2026-08-30 14:00")
	readings := []Reading{
		{Value: 5.2, Context: ContextFasting, RecordedAt: mustTime(t, "2026-08-30 07:30")},
		{Value: 7.1, Context: ContextPostLunch, RecordedAt: mustTime(t, "2026-08-30 13:10")},
		{Value: 9.9, Context: ContextPostDinner, RecordedAt: mustTime(t, "2026-08-29 21:00")},
	}

	result := Aggregate(readings, WindowDay, now)

	require.Len(t, result.Series, 2)
	assert.Equal(t, "07:30", result.Series[0].Label)
	assert.Equal(t, 5.2, result.Series[0].Value)
	assert.Equal(t, "13:10", result.Series[1].Label)

	assert.Equal(t, 6.2, result.Stats.Avg)
	assert.Equal(t, 7.1, result.Stats.Max)
	assert.Equal(t, 5.2, result.Stats.Min)
}

func TestAggregateDayFallsBackToLastTen(t *testing.T) {
	now := mustTime(t, "2026-08-30 09:00")

	// Twelve readings, all from yesterday: the day window is empty, so
	// the most recent ten stand in for both the series and the stats.
	var readings []Reading
	base := mustTime(t, "2026-08-29 06:00")
	for i := 0; i < 12; i++ {
		readings = append(readings, Reading{
			Value:      5.0 + float64(i)*0.1,
			Context:    ContextFasting,
			RecordedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	result := Aggregate(readings, WindowDay, now)

	require.Len(t, result.Series, 10)
	// Chronological order, starting from the third reading.
	assert.Equal(t, "08:00", result.Series[0].Label)
	assert.InDelta(t, 5.2, result.Series[0].Value, 1e-9)
	assert.Equal(t, "17:00", result.Series[9].Label)

	assert.InDelta(t, 6.1, result.Stats.Max, 1e-9)
	assert.InDelta(t, 5.2, result.Stats.Min, 1e-9)
}

func TestAggregateWeekGroupsByCalendarDay(t *testing.T) {
	now := mustTime(t, "2026-08-30 20:00")
	readings := []Reading{
		{Value: 6.0, RecordedAt: mustTime(t, "2026-08-28 08:00")},
		{Value: 7.0, RecordedAt: mustTime(t, "2026-08-28 20:00")},
		{Value: 5.5, RecordedAt: mustTime(t, "2026-08-29 08:00")},
		{Value: 9.0, RecordedAt: mustTime(t, "2026-08-10 08:00")}, // outside window
	}

	result := Aggregate(readings, WindowWeek, now)

	require.Len(t, result.Series, 2)
	assert.Equal(t, "Aug 28", result.Series[0].Label)
	assert.Equal(t, 6.5, result.Series[0].Value)
	assert.Equal(t, "Aug 29", result.Series[1].Label)
	assert.Equal(t, 5.5, result.Series[1].Value)

	assert.Equal(t, 6.2, result.Stats.Avg)
	assert.Equal(t, 7.0, result.Stats.Max)
	assert.Equal(t, 5.5, result.Stats.Min)
}

func TestAggregateMonthRollingCutoff(t *testing.T) {
	now := mustTime(t, "2026-08-30 12:00")
	readings := []Reading{
		{Value: 6.4, RecordedAt: now.Add(-29 * 24 * time.Hour)},
		{Value: 8.2, RecordedAt: now.Add(-31 * 24 * time.Hour)},
	}

	result := Aggregate(readings, WindowMonth, now)

	require.Len(t, result.Series, 1)
	assert.Equal(t, 6.4, result.Series[0].Value)
	assert.Equal(t, 6.4, result.Stats.Avg)
}

func TestAggregateUnsortedInput(t *testing.T) {
	now := mustTime(t, "2026-08-30 22:00")
	readings := []Reading{
		{Value: 7.7, RecordedAt: mustTime(t, "2026-08-30 18:00")},
		{Value: 5.1, RecordedAt: mustTime(t, "2026-08-30 07:00")},
	}

	result := Aggregate(readings, WindowDay, now)

	require.Len(t, result.Series, 2)
	assert.Equal(t, "07:00", result.Series[0].Label)
	assert.Equal(t, "18:00", result.Series[1].Label)
}

func TestAggregateEmptySelection(t *testing.T) {
	now := mustTime(t, "2026-08-30 12:00")

	result := Aggregate(nil, WindowWeek, now)
	assert.Empty(t, result.Series)
	assert.Equal(t, Stats{}, result.Stats)

	// No readings at all: the day fallback has nothing to fall back to.
	result = Aggregate(nil, WindowDay, now)
	assert.Empty(t, result.Series)
	assert.Equal(t, Stats{Avg: 0, Max: 0, Min: 0}, result.Stats)
}

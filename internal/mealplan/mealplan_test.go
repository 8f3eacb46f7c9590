package mealplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.August, 30, hour, min, 0, 0, time.Local)
}

func TestCurrentKey(t *testing.T) {
	tests := []struct {
		hour, min int
		key       Key
	}{
		{5, 0, VeryEarly},
		{7, 59, VeryEarly},
		{8, 0, Breakfast},
		{10, 59, Breakfast},
		{11, 0, MidMorning},
		{13, 29, MidMorning},
		{13, 30, Lunch},
		{16, 59, Lunch},
		{17, 0, Evening},
		{20, 29, Evening},
		{20, 30, Dinner},
		{22, 29, Dinner},
		{22, 30, BeforeSleep},
		{23, 45, BeforeSleep},
		{0, 0, BeforeSleep},
		{4, 59, BeforeSleep},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, CurrentKey(at(tt.hour, tt.min)), "%02d:%02d", tt.hour, tt.min)
	}
}

func TestMealsCoverAllKeys(t *testing.T) {
	require.Len(t, Meals, 7)
	seen := map[Key]bool{}
	for _, m := range Meals {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.TimeRange)
		assert.NotEmpty(t, m.Summary)
		require.NotEmpty(t, m.Categories)
		for _, c := range m.Categories {
			assert.NotEmpty(t, c.Options)
		}
		seen[m.Key] = true
	}
	assert.Len(t, seen, 7)
}

func TestGetUnknownKeyFallsBackToBreakfast(t *testing.T) {
	assert.Equal(t, Breakfast, Get(Key("brunch")).Key)
}

func TestCurrentMatchesLookup(t *testing.T) {
	now := at(14, 0)
	assert.Equal(t, Get(CurrentKey(now)), Current(now))
}

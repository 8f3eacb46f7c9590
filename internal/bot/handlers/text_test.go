package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueInput(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 25, 0, 0, time.Local)

	t.Run("plain value uses now", func(t *testing.T) {
		value, day, err := parseValueInput("5.6", now)
		require.NoError(t, err)
		assert.InDelta(t, 5.6, value, 1e-9)
		assert.Equal(t, now, day)
	})

	t.Run("back-dated value keeps the clock time", func(t *testing.T) {
		value, day, err := parseValueInput("7.2 2026-08-25", now)
		require.NoError(t, err)
		assert.InDelta(t, 7.2, value, 1e-9)
		assert.Equal(t, 2026, day.Year())
		assert.Equal(t, time.August, day.Month())
		assert.Equal(t, 25, day.Day())
		assert.Equal(t, 14, day.Hour())
		assert.Equal(t, 25, day.Minute())
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		value, _, err := parseValueInput("  6.1  ", now)
		require.NoError(t, err)
		assert.InDelta(t, 6.1, value, 1e-9)
	})

	rejected := []string{
		"",
		"abc",
		"NaN",
		"+Inf",
		"-Inf",
		"5.6 not-a-date",
		"5.6 2026-08-25 extra",
	}
	for _, input := range rejected {
		t.Run("rejects "+input, func(t *testing.T) {
			_, _, err := parseValueInput(input, now)
			assert.Error(t, err)
		})
	}
}

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/susthoma/diabetes-diet-bot/internal/database"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
	"gorm.io/gorm"
)

func record(id uint, value float64, recordedAt time.Time) database.GlucoseReading {
	return database.GlucoseReading{
		Model:      gorm.Model{ID: id},
		UserID:     1,
		Value:      value,
		Context:    string(glucose.ContextFasting),
		RecordedAt: recordedAt,
	}
}

func TestReplaceSortsNewestFirst(t *testing.T) {
	now := time.Now()
	s := New()
	s.Replace([]database.GlucoseReading{
		record(1, 5.0, now.Add(-2*time.Hour)),
		record(2, 6.0, now),
		record(3, 7.0, now.Add(-1*time.Hour)),
	})

	readings := s.Readings()
	require.Len(t, readings, 3)
	assert.Equal(t, uint(2), readings[0].ID)
	assert.Equal(t, uint(3), readings[1].ID)
	assert.Equal(t, uint(1), readings[2].ID)
	assert.True(t, s.Loaded())
}

func TestAddKeepsOrderForBackdatedReading(t *testing.T) {
	now := time.Now()
	s := New()
	s.Replace([]database.GlucoseReading{
		record(1, 5.0, now),
	})

	// Back-dated create still lands behind the newer reading.
	s.Add(record(2, 6.0, now.Add(-24*time.Hour)))
	readings := s.Readings()
	require.Len(t, readings, 2)
	assert.Equal(t, uint(1), readings[0].ID)
	assert.Equal(t, uint(2), readings[1].ID)

	s.Add(record(3, 7.0, now.Add(time.Minute)))
	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, uint(3), latest.ID)
}

func TestRemoveDropsExactlyOneID(t *testing.T) {
	now := time.Now()
	s := New()
	s.Replace([]database.GlucoseReading{
		record(1, 5.0, now.Add(-2*time.Hour)),
		record(2, 6.0, now.Add(-1*time.Hour)),
		record(3, 7.0, now),
	})

	assert.True(t, s.Remove(2))
	readings := s.Readings()
	require.Len(t, readings, 2)
	assert.Equal(t, uint(3), readings[0].ID)
	assert.Equal(t, uint(1), readings[1].ID)

	assert.False(t, s.Remove(42))
	assert.Equal(t, 2, s.Len())
}

func TestLatestEmpty(t *testing.T) {
	s := New()
	_, ok := s.Latest()
	assert.False(t, ok)
	assert.False(t, s.Loaded())
}

func TestToggleSelection(t *testing.T) {
	s := New()
	assert.False(t, s.IsSelected("ফল", "পেয়ারা"))
	assert.True(t, s.ToggleSelection("ফল", "পেয়ারা"))
	assert.True(t, s.IsSelected("ফল", "পেয়ারা"))
	assert.False(t, s.ToggleSelection("ফল", "পেয়ারা"))
	assert.False(t, s.IsSelected("ফল", "পেয়ারা"))
}

func TestRegistryReturnsSameSession(t *testing.T) {
	r := NewRegistry()
	a := r.Get(100)
	b := r.Get(100)
	c := r.Get(200)
	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

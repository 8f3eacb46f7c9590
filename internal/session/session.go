// Package session keeps the per-user in-memory working set: the
// profile, a mirror of the stored readings, and the ephemeral meal-plan
// selections. The mirror is refreshed wholesale on first contact,
// updated in place on successful create/delete, and left untouched when
// a store call fails.
package session

import (
	"sort"
	"sync"

	"github.com/susthoma/diabetes-diet-bot/internal/database"
	"github.com/susthoma/diabetes-diet-bot/internal/glucose"
)

// ReadingFromRecord converts a stored row into the domain reading.
func ReadingFromRecord(rec database.GlucoseReading) glucose.Reading {
	return glucose.Reading{
		ID:         rec.ID,
		Value:      rec.Value,
		Context:    glucose.Context(rec.Context),
		RecordedAt: rec.RecordedAt,
	}
}

// Session is one user's working set. All methods are safe for
// concurrent use, though the bot drives each chat from a single
// goroutine.
type Session struct {
	mu         sync.RWMutex
	readings   []glucose.Reading // newest first
	loaded     bool
	selections map[string]map[string]bool
}

func New() *Session {
	return &Session{
		selections: make(map[string]map[string]bool),
	}
}

// Loaded reports whether the mirror has been filled from the store.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Replace refills the mirror wholesale from the store.
func (s *Session) Replace(records []database.GlucoseReading) {
	readings := make([]glucose.Reading, 0, len(records))
	for _, rec := range records {
		readings = append(readings, ReadingFromRecord(rec))
	}
	sortNewestFirst(readings)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings = readings
	s.loaded = true
}

// Add prepends a freshly created reading. A back-dated reading lands in
// its proper place; display order stays newest first.
func (s *Session) Add(rec database.GlucoseReading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings = append([]glucose.Reading{ReadingFromRecord(rec)}, s.readings...)
	sortNewestFirst(s.readings)
}

// Remove drops the reading with the given id. It reports whether the
// id was present; relative order of the rest is unchanged.
func (s *Session) Remove(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.readings {
		if r.ID == id {
			s.readings = append(s.readings[:i], s.readings[i+1:]...)
			return true
		}
	}
	return false
}

// Readings returns a copy of the mirror, newest first.
func (s *Session) Readings() []glucose.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]glucose.Reading, len(s.readings))
	copy(out, s.readings)
	return out
}

// Latest returns the most recent reading, if any.
func (s *Session) Latest() (glucose.Reading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.readings) == 0 {
		return glucose.Reading{}, false
	}
	return s.readings[0], true
}

// Len returns the number of mirrored readings.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}

// ToggleSelection flips one meal-plan option and reports its new state.
// Selections live only in this session; they are never persisted.
func (s *Session) ToggleSelection(category, option string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selections[category] == nil {
		s.selections[category] = make(map[string]bool)
	}
	s.selections[category][option] = !s.selections[category][option]
	return s.selections[category][option]
}

// IsSelected reports whether an option is currently selected.
func (s *Session) IsSelected(category, option string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selections[category][option]
}

func sortNewestFirst(readings []glucose.Reading) {
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].RecordedAt.After(readings[j].RecordedAt)
	})
}

// Registry hands out one session per telegram user.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// Get returns the session for a telegram user, creating it on first
// contact.
func (r *Registry) Get(telegramID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[telegramID]
	if !ok {
		sess = New()
		r.sessions[telegramID] = sess
	}
	return sess
}

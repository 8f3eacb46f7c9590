package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerStates(t *testing.T) {
	m := NewManager()

	assert.Equal(t, None, m.GetUserState(1))

	m.SetUserState(1, WaitingForGlucoseValue)
	assert.Equal(t, WaitingForGlucoseValue, m.GetUserState(1))
	assert.Equal(t, None, m.GetUserState(2))

	m.ClearUserState(1)
	assert.Equal(t, None, m.GetUserState(1))
}

func TestManagerTempData(t *testing.T) {
	m := NewManager()

	_, ok := m.GetTempData(1, KeyReadingContext)
	assert.False(t, ok)

	m.SetTempData(1, KeyReadingContext, "খালি পেটে")
	v, ok := m.GetTempData(1, KeyReadingContext)
	assert.True(t, ok)
	assert.Equal(t, "খালি পেটে", v)

	m.ClearTempData(1)
	_, ok = m.GetTempData(1, KeyReadingContext)
	assert.False(t, ok)
}

// Package progress tracks which level the player is on.
// A Tracker is handed to the platform generator as its level context.
package progress

import (
	"fmt"
	"sync"
)

// FirstLevel is the level a new run starts on
const FirstLevel = 1

// Tracker holds the current level number
type Tracker struct {
	mu    sync.RWMutex
	level int
}

// New creates a Tracker starting at level, which must be at least FirstLevel
func New(level int) (*Tracker, error) {
	if level < FirstLevel {
		return nil, fmt.Errorf("level must be at least %d, got %d", FirstLevel, level)
	}
	return &Tracker{level: level}, nil
}

// NewRun creates a Tracker at FirstLevel
func NewRun() *Tracker {
	return &Tracker{level: FirstLevel}
}

// CurrentLevel returns the level being played
func (t *Tracker) CurrentLevel() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.level
}

// Advance moves to the next level and returns it
func (t *Tracker) Advance() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.level++
	return t.level
}

// SetLevel jumps to a specific level
func (t *Tracker) SetLevel(level int) error {
	if level < FirstLevel {
		return fmt.Errorf("level must be at least %d, got %d", FirstLevel, level)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.level = level
	return nil
}

// Reset returns to FirstLevel
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.level = FirstLevel
}

package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyTracker turns the press/autorepeat stream a terminal delivers into
// key-down and key-up events. Terminals never report releases, so a key is
// considered released once no event for it arrived within releaseAfter.
type KeyTracker struct {
	releaseAfter time.Duration
	held         map[core.Key]time.Time // last event per held key
}

// NewKeyTracker creates a tracker with the given release timeout.
func NewKeyTracker(releaseAfter time.Duration) *KeyTracker {
	return &KeyTracker{
		releaseAfter: releaseAfter,
		held:         make(map[core.Key]time.Time),
	}
}

// Press records a press at now. The first press of a key is a plain
// key-down; presses while it is still held are autorepeats.
func (t *KeyTracker) Press(k core.Key, now time.Time) core.KeyEvent {
	_, held := t.held[k]
	t.held[k] = now
	return core.Down(k, held)
}

// Expire releases every key idle for at least releaseAfter.
// Events are ordered by key.
func (t *KeyTracker) Expire(now time.Time) []core.KeyEvent {
	return t.release(func(last time.Time) bool {
		return now.Sub(last) >= t.releaseAfter
	})
}

// ReleaseAll releases every held key, e.g. when the host loses focus.
func (t *KeyTracker) ReleaseAll() []core.KeyEvent {
	return t.release(func(time.Time) bool { return true })
}

// Held reports whether k is currently considered down.
func (t *KeyTracker) Held(k core.Key) bool {
	_, ok := t.held[k]
	return ok
}

func (t *KeyTracker) release(due func(last time.Time) bool) []core.KeyEvent {
	var out []core.KeyEvent
	for k, last := range t.held {
		if due(last) {
			out = append(out, core.Up(k))
			delete(t.held, k)
		}
	}
	slices.SortFunc(out, func(a, b core.KeyEvent) int {
		return int(a.Key) - int(b.Key)
	})
	return out
}

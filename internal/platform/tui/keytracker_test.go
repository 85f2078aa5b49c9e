package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestKeyTrackerPressAndRepeat(t *testing.T) {
	tr := NewKeyTracker(90 * time.Millisecond)
	t0 := time.Now()

	assert.Equal(t, core.Down(core.KeyLeft, false), tr.Press(core.KeyLeft, t0))
	assert.Equal(t, core.Down(core.KeyLeft, true), tr.Press(core.KeyLeft, t0.Add(30*time.Millisecond)))
	assert.Equal(t, core.Down(core.KeyRight, false), tr.Press(core.KeyRight, t0.Add(40*time.Millisecond)))
	assert.True(t, tr.Held(core.KeyLeft))
	assert.True(t, tr.Held(core.KeyRight))
}

func TestKeyTrackerExpire(t *testing.T) {
	tr := NewKeyTracker(90 * time.Millisecond)
	t0 := time.Now()
	tr.Press(core.KeyLeft, t0)
	tr.Press(core.KeyHold, t0.Add(50*time.Millisecond))

	assert.Empty(t, tr.Expire(t0.Add(89*time.Millisecond)))

	// Repeats keep the key alive.
	tr.Press(core.KeyLeft, t0.Add(80*time.Millisecond))
	assert.Empty(t, tr.Expire(t0.Add(120*time.Millisecond)))

	assert.Equal(t, []core.KeyEvent{core.Up(core.KeyHold)}, tr.Expire(t0.Add(140*time.Millisecond)))
	assert.Equal(t, []core.KeyEvent{core.Up(core.KeyLeft)}, tr.Expire(t0.Add(170*time.Millisecond)))
	assert.False(t, tr.Held(core.KeyLeft))

	// After a release the next press is fresh again.
	assert.Equal(t, core.Down(core.KeyLeft, false), tr.Press(core.KeyLeft, t0.Add(200*time.Millisecond)))
}

func TestKeyTrackerReleaseAllSorted(t *testing.T) {
	tr := NewKeyTracker(time.Second)
	now := time.Now()
	tr.Press(core.KeyHold, now)
	tr.Press(core.KeyLeft, now)
	tr.Press(core.KeyHardDrop, now)

	assert.Equal(t, []core.KeyEvent{
		core.Up(core.KeyLeft),
		core.Up(core.KeyHardDrop),
		core.Up(core.KeyHold),
	}, tr.ReleaseAll())
	assert.Empty(t, tr.ReleaseAll())
}

func TestKeyTrackerAutorepeatDelayReleases(t *testing.T) {
	tr := NewKeyTracker(90 * time.Millisecond)
	t0 := time.Now()

	// Terminals wait a few hundred milliseconds before autorepeat starts, so a
	// held key is released in between and the first repeat reads as a new press.
	assert.Equal(t, core.Down(core.KeyLeft, false), tr.Press(core.KeyLeft, t0))
	assert.Equal(t, []core.KeyEvent{core.Up(core.KeyLeft)}, tr.Expire(t0.Add(100*time.Millisecond)))
	assert.Equal(t, core.Down(core.KeyLeft, false), tr.Press(core.KeyLeft, t0.Add(400*time.Millisecond)))
	assert.Equal(t, core.Down(core.KeyLeft, true), tr.Press(core.KeyLeft, t0.Add(433*time.Millisecond)))
}

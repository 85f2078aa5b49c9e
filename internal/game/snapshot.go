package game

import "time"

// Snapshot captures the session state for determinism tests and debugging.
type Snapshot struct {
	Stats

	Active   bool
	Kind     Kind
	Col      int
	Row      int
	Rotation int

	Hold     Kind
	HasHold  bool
	HoldUsed bool

	DASArmed bool
	DASDir   Direction

	Interval time.Duration
	NextTick time.Time
	Occupied int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Stats:    s.stats,
		Active:   s.active,
		Hold:     s.hold.kind,
		HasHold:  s.hold.full,
		HoldUsed: s.hold.used,
		Interval: s.interval,
		NextTick: s.nextTick,
		Occupied: s.board.Occupied(),
	}
	if s.active {
		snap.Kind = s.piece.Kind
		snap.Col = s.piece.Col
		snap.Row = s.piece.Row
		snap.Rotation = s.piece.Rotation
	}
	if s.das != nil {
		snap.DASArmed = true
		snap.DASDir = s.das.dir
	}
	return snap
}

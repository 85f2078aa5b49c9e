package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Direction is a horizontal DAS direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// dasArm is a pending charged move.
type dasArm struct {
	deadline time.Time
	dir      Direction
}

// holdSlot stores a set-aside kind. used blocks a second swap until the
// active piece locks.
type holdSlot struct {
	kind Kind
	full bool
	used bool
}

// Stats counts lifecycle events since the session started.
type Stats struct {
	Spawned int // pieces taken from the sequencer
	Locks   int // pieces merged into the board (or wiped on lock-out)
	Cleared int // rows removed
	Wipes   int // lock-outs that reset the board
	Ticks   int // gravity steps applied
}

// Session owns the board, the falling piece, the sequencer and all timing
// state. It is driven by a single host loop and is not safe for concurrent use.
type Session struct {
	id     string
	cfg    config.Config
	board  *Board
	bag    *Sequencer
	piece  Piece
	active bool
	hold   holdSlot
	das    *dasArm

	interval time.Duration
	nextTick time.Time

	now    func() time.Time
	logger *log.Logger
	stats  Stats
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session with an empty board. The first piece is
// spawned by the first Update.
func NewSession(cfg config.Config, rng Shuffler, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		board:    NewBoard(),
		bag:      NewSequencer(rng),
		interval: cfg.Gravity.Interval,
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	s.nextTick = s.now().Add(s.interval)
	return s
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return s.id
}

// Update spawns a piece when none is active and applies the gravity steps
// that are due. A step that locks the piece ends the call; steps still owed
// carry over, so the next Update spawns and resumes catching up.
func (s *Session) Update() {
	now := s.now()
	if !s.active {
		s.spawn(s.bag.Next())
	}
	for !now.Before(s.nextTick) {
		if locked := s.tick(now); locked {
			return
		}
	}
}

// tick applies one gravity step and reports whether the piece locked.
func (s *Session) tick(now time.Time) bool {
	if s.das != nil && !now.Before(s.das.deadline) {
		s.charge(s.das.dir)
		s.das = nil
	}

	s.stats.Ticks++
	res, locked := s.board.fall(&s.piece)
	if locked {
		s.lock(res)
	} else {
		s.interval = s.cfg.Gravity.Next(s.interval)
	}
	s.nextTick = s.nextTick.Add(s.interval)
	return locked
}

// HandleKey dispatches a host key event.
func (s *Session) HandleKey(ev core.KeyEvent) {
	if ev.Pressed {
		s.KeyDown(ev.Key, ev.Repeat)
		return
	}
	s.KeyUp(ev.Key)
}

// KeyDown handles a key press. Autorepeated presses only drive soft drop.
func (s *Session) KeyDown(k core.Key, repeat bool) {
	if repeat && k != core.KeySoftDrop {
		return
	}

	switch k {
	case core.KeyLeft:
		s.shift(DirLeft)
	case core.KeyRight:
		s.shift(DirRight)
	case core.KeySoftDrop:
		if s.active {
			if res, locked := s.board.fall(&s.piece); locked {
				s.lock(res)
			}
		}
	case core.KeyHardDrop:
		if s.active {
			s.lock(s.board.HardDrop(&s.piece))
		}
	case core.KeyRotateCW:
		if s.active {
			s.board.RotateClockwise(&s.piece)
		}
	case core.KeyRotateCCW:
		if s.active {
			s.board.RotateCounterClockwise(&s.piece)
		}
	case core.KeyHold:
		s.SwapHold()
	}
}

// KeyUp handles a key release. Releasing a direction cancels a pending
// charge for that direction only.
func (s *Session) KeyUp(k core.Key) {
	var dir Direction
	switch k {
	case core.KeyLeft:
		dir = DirLeft
	case core.KeyRight:
		dir = DirRight
	default:
		return
	}
	if s.das != nil && s.das.dir == dir {
		s.das = nil
	}
}

// shift steps once and arms DAS, replacing any earlier arm.
func (s *Session) shift(dir Direction) {
	if !s.active {
		return
	}
	if dir == DirLeft {
		s.board.MoveLeft(&s.piece)
	} else {
		s.board.MoveRight(&s.piece)
	}
	s.das = &dasArm{deadline: s.now().Add(s.cfg.DAS.Delay), dir: dir}
}

func (s *Session) charge(dir Direction) {
	if dir == DirLeft {
		s.board.ChargeLeft(&s.piece)
	} else {
		s.board.ChargeRight(&s.piece)
	}
}

// SwapHold sets the active kind aside. An empty slot takes the kind and a
// new piece is drawn; a full slot exchanges kinds and the active piece
// restarts from the spawn position. Only one swap is allowed per piece.
func (s *Session) SwapHold() {
	if s.hold.used || !s.active {
		return
	}

	held := s.piece.Kind
	if s.hold.full {
		s.place(s.hold.kind)
	} else {
		s.spawn(s.bag.Next())
	}
	s.hold.kind, s.hold.full, s.hold.used = held, true, true
	s.logger.Debug("hold", "held", held, "active", s.piece.Kind)
}

// spawn places a kind drawn from the sequencer.
func (s *Session) spawn(k Kind) {
	s.place(k)
	s.stats.Spawned++
	s.logger.Debug("spawn", "kind", k, "col", s.piece.Col, "row", s.piece.Row)
}

// place puts a kind at the spawn position with rotation 0.
func (s *Session) place(k Kind) {
	s.piece = Piece{
		Kind: k,
		Col:  core.Clamp(s.cfg.Spawn.Column, 0, Width-ShapeWidth(k, 0)),
		Row:  s.cfg.Spawn.Row,
	}
	s.active = true
}

// lock ends the active piece's lifecycle.
func (s *Session) lock(res DropResult) {
	s.active = false
	s.hold.used = false
	s.stats.Locks++
	s.stats.Cleared += res.Cleared

	switch {
	case res.LockOut:
		s.stats.Wipes++
		s.logger.Warn("lock-out, board reset", "kind", s.piece.Kind, "col", s.piece.Col)
	case res.Cleared > 0:
		s.logger.Debug("lock", "kind", s.piece.Kind, "row", res.Row, "cleared", res.Cleared)
	default:
		s.logger.Debug("lock", "kind", s.piece.Kind, "row", res.Row)
	}
}

// Stats returns the lifecycle counters.
func (s *Session) Stats() Stats {
	return s.stats
}

package game

// View is the read-only state a renderer needs for one frame.
type View struct {
	Board [Height][Width]Cell // bottom row first

	HasActive  bool
	ActiveKind Kind
	Active     []Offset // absolute cells
	Ghost      []Offset // where a hard drop would put Active; nil if nowhere

	Hold     *Kind
	HoldUsed bool
	Preview  []Kind
}

// View projects the session for rendering.
func (s *Session) View() View {
	v := View{
		Board:    s.board.Rows(),
		HoldUsed: s.hold.used,
		Preview:  s.bag.Preview(s.cfg.Preview),
	}
	if s.hold.full {
		k := s.hold.kind
		v.Hold = &k
	}
	if !s.active {
		return v
	}

	v.HasActive = true
	v.ActiveKind = s.piece.Kind
	cells := s.piece.Cells()
	v.Active = cells[:]

	ghost := s.piece
	if s.board.Descend(&ghost) {
		gc := ghost.Cells()
		v.Ghost = gc[:]
	}
	return v
}

// Filled reports whether (row, col) holds a locked cell.
func (v View) Filled(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return false
	}
	return v.Board[row][col].Filled
}

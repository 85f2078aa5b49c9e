package game

// Board dimensions. Row 0 is the bottom; gravity pulls toward it.
const (
	Width  = 10
	Height = 20
)

// Cell is one grid position. Kind is only a color tag for renderers.
type Cell struct {
	Filled bool
	Kind   Kind
}

// Board is the fixed occupancy grid, stored bottom row first.
type Board struct {
	rows [Height][Width]Cell
}

// DropResult describes what a hard drop did.
type DropResult struct {
	Ignored bool // column was out of range, nothing changed
	LockOut bool // the piece fit nowhere and the board was wiped
	Row     int  // row the piece settled at
	Cleared int  // full rows removed after the lock
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset empties the whole grid.
func (b *Board) Reset() {
	b.rows = [Height][Width]Cell{}
}

// At returns the cell at (row, col). Positions off the grid read as empty.
func (b *Board) At(row, col int) Cell {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return Cell{}
	}
	return b.rows[row][col]
}

// Set writes a cell. Positions off the grid are ignored.
func (b *Board) Set(row, col int, c Cell) {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return
	}
	b.rows[row][col] = c
}

// Rows returns a copy of the grid, bottom row first.
func (b *Board) Rows() [Height][Width]Cell {
	return b.rows
}

// Occupied counts filled cells.
func (b *Board) Occupied() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// Collides reports whether any cell of p is left or right of the grid, or
// lands on an occupied cell. Cells at row 20 and above are open space.
func (b *Board) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= Width {
			return true
		}
		if c.Row >= 0 && c.Row < Height && b.rows[c.Row][c.Col].Filled {
			return true
		}
	}
	return false
}

// Descend lowers p to its resting row. Scanning down from the current row,
// the first colliding row (or the floor below row 0) stops the scan and p
// settles one row above it. It reports false, leaving p untouched, when that
// row would leave part of the piece above the grid.
func (b *Board) Descend(p *Piece) bool {
	cur := *p
	for cur.Row >= 0 && !b.Collides(cur) {
		cur.Row--
	}

	settle := cur.Row + 1
	if settle < 0 || settle > Height-p.Height() {
		return false
	}
	p.Row = settle
	return true
}

// HardDrop settles p, merges it into the grid and clears full rows.
// A piece that cannot settle inside the grid wipes the board.
func (b *Board) HardDrop(p *Piece) DropResult {
	if p.Col < 0 || p.Col >= Width {
		return DropResult{Ignored: true}
	}
	if !b.Descend(p) {
		b.Reset()
		return DropResult{LockOut: true, Row: p.Row}
	}

	for _, c := range p.Cells() {
		b.Set(c.Row, c.Col, Cell{Filled: true, Kind: p.Kind})
	}
	return DropResult{Row: p.Row, Cleared: b.ClearLines()}
}

// ClearLines removes every full row. Remaining rows keep their order and
// drop down; empty rows are added on top. It returns the number removed.
func (b *Board) ClearLines() int {
	var kept [Height][Width]Cell
	n := 0
	for _, row := range b.rows {
		if rowFull(row) {
			continue
		}
		kept[n] = row
		n++
	}
	b.rows = kept
	return Height - n
}

func rowFull(row [Width]Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

package game

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is the falling shape: kind, bottom-left anchor and rotation.
type Piece struct {
	Kind     Kind
	Col      int
	Row      int
	Rotation int
}

// Width returns the piece's bounding width at its rotation.
func (p Piece) Width() int {
	return ShapeWidth(p.Kind, p.Rotation)
}

// Height returns the piece's bounding height at its rotation.
func (p Piece) Height() int {
	return ShapeHeight(p.Kind, p.Rotation)
}

// Cells returns the piece's absolute (row, col) cells.
func (p Piece) Cells() [4]Offset {
	cells := Cells(p.Kind, p.Rotation)
	for i := range cells {
		cells[i].Row += p.Row
		cells[i].Col += p.Col
	}
	return cells
}

// MoveLeft shifts p one column left. It reports false when p is at the
// wall or the step would collide.
func (b *Board) MoveLeft(p *Piece) bool {
	if p.Col <= 0 {
		return false
	}
	p.Col--
	if b.Collides(*p) {
		p.Col++
		return false
	}
	return true
}

// MoveRight shifts p one column right. It reports false when p is at the
// wall or the step would collide.
func (b *Board) MoveRight(p *Piece) bool {
	if p.Col >= Width-p.Width() {
		return false
	}
	p.Col++
	if b.Collides(*p) {
		p.Col--
		return false
	}
	return true
}

// ChargeLeft slides p left until the wall or an obstruction.
func (b *Board) ChargeLeft(p *Piece) {
	for b.MoveLeft(p) {
	}
}

// ChargeRight slides p right until the wall or an obstruction.
func (b *Board) ChargeRight(p *Piece) {
	for b.MoveRight(p) {
	}
}

// RotateClockwise turns p one step clockwise.
func (b *Board) RotateClockwise(p *Piece) {
	b.rotate(p, normRotation(p.Rotation+1))
}

// RotateCounterClockwise turns p one step counterclockwise.
func (b *Board) RotateCounterClockwise(p *Piece) {
	b.rotate(p, normRotation(p.Rotation-1))
}

// rotate applies the pivot correction for the new state and clamps the
// piece into the grid. If the result collides only the rotation index is
// restored; the corrected position is kept.
func (b *Board) rotate(p *Piece, next int) {
	prev := p.Rotation
	from, to := Pivot(p.Kind, prev), Pivot(p.Kind, next)

	p.Rotation = next
	p.Row += to.Row - from.Row
	p.Col += to.Col - from.Col
	p.Row = core.Clamp(p.Row, 0, Height-p.Height())
	p.Col = core.Clamp(p.Col, 0, Width-p.Width())

	if b.Collides(*p) {
		p.Rotation = prev
	}
}

// MoveDown applies one gravity step and reports whether p locked.
// There is no lock delay: a piece that cannot step down is hard-dropped
// where it is.
func (b *Board) MoveDown(p *Piece) bool {
	_, locked := b.fall(p)
	return locked
}

// fall is MoveDown that also returns the drop outcome when p locks.
func (b *Board) fall(p *Piece) (DropResult, bool) {
	if p.Row == 0 {
		return b.HardDrop(p), true
	}
	p.Row--
	if b.Collides(*p) {
		p.Row++
		return b.HardDrop(p), true
	}
	return DropResult{}, false
}

// Package game implements the falling-block simulation: the shape catalog,
// the board, piece movement, the 7-bag sequencer and the timed session that
// ties them together. It has no rendering or input dependencies; hosts drive
// a Session and read its View.
package game

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies one of the seven shapes.
type Kind int

const (
	KindO Kind = iota
	KindT
	KindL
	KindJ
	KindS
	KindZ
	KindI
)

// KindCount is the number of shape kinds, and the size of one bag.
const KindCount = 7

// Kinds lists every kind in catalog order.
var Kinds = [KindCount]Kind{KindO, KindT, KindL, KindJ, KindS, KindZ, KindI}

// String returns the shape letter.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return "OTLJSZI"[k : k+1]
}

// Color returns the renderer color tag for the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindL:
		return core.ColorOrange
	case KindJ:
		return core.ColorBlue
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindI:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// Offset is a (row, column) displacement. Rows grow upward.
type Offset struct {
	Row, Col int
}

// rotationState is one catalog entry.
type rotationState struct {
	cells  [4]Offset
	width  int
	height int
	pivot  Offset // origin of the tight box inside the rotation box
}

// shapeDef places a kind's rotation-0 cells inside its square rotation box.
type shapeDef struct {
	box   int
	cells [4]Offset
}

// Rotation boxes follow the usual guideline layout: 2x2 for O, 4x4 for I,
// 3x3 for the rest. Rows count upward from the bottom of the box.
var shapeDefs = [KindCount]shapeDef{
	KindO: {box: 2, cells: [4]Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	KindT: {box: 3, cells: [4]Offset{{1, 0}, {1, 1}, {1, 2}, {2, 1}}},
	KindL: {box: 3, cells: [4]Offset{{1, 0}, {1, 1}, {1, 2}, {2, 2}}},
	KindJ: {box: 3, cells: [4]Offset{{1, 0}, {1, 1}, {1, 2}, {2, 0}}},
	KindS: {box: 3, cells: [4]Offset{{1, 0}, {1, 1}, {2, 1}, {2, 2}}},
	KindZ: {box: 3, cells: [4]Offset{{1, 1}, {1, 2}, {2, 0}, {2, 1}}},
	KindI: {box: 4, cells: [4]Offset{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
}

// catalog is indexed by kind and rotation.
var catalog = buildCatalog()

func buildCatalog() [KindCount][4]rotationState {
	var out [KindCount][4]rotationState
	for k, def := range shapeDefs {
		cells := def.cells
		for rot := range 4 {
			out[k][rot] = normalize(cells)
			cells = rotateBox(cells, def.box)
		}
	}
	return out
}

// rotateBox turns box cells 90 degrees clockwise: (row, col) -> (box-1-col, row).
func rotateBox(cells [4]Offset, box int) [4]Offset {
	var out [4]Offset
	for i, c := range cells {
		out[i] = Offset{Row: box - 1 - c.Col, Col: c.Row}
	}
	return out
}

// normalize moves cells to the tight box origin and records where that origin was.
func normalize(cells [4]Offset) rotationState {
	minR, minC := cells[0].Row, cells[0].Col
	maxR, maxC := minR, minC
	for _, c := range cells[1:] {
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
	}

	st := rotationState{
		width:  maxC - minC + 1,
		height: maxR - minR + 1,
		pivot:  Offset{Row: minR, Col: minC},
	}
	for i, c := range cells {
		st.cells[i] = Offset{Row: c.Row - minR, Col: c.Col - minC}
	}
	return st
}

// normRotation maps any rotation onto 0..3.
func normRotation(rot int) int {
	return ((rot % 4) + 4) % 4
}

func entry(k Kind, rot int) *rotationState {
	return &catalog[k][normRotation(rot)]
}

// Cells returns the four relative offsets of a kind at a rotation.
func Cells(k Kind, rot int) [4]Offset {
	return entry(k, rot).cells
}

// ShapeWidth returns the bounding width of a kind at a rotation.
func ShapeWidth(k Kind, rot int) int {
	return entry(k, rot).width
}

// ShapeHeight returns the bounding height of a kind at a rotation.
func ShapeHeight(k Kind, rot int) int {
	return entry(k, rot).height
}

// Pivot returns the rotation pivot offset of a kind at a rotation.
// Rotating from a to b translates a piece by Pivot(b) - Pivot(a).
func Pivot(k Kind, rot int) Offset {
	return entry(k, rot).pivot
}

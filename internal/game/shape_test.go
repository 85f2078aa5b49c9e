package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRotationZero(t *testing.T) {
	tests := []struct {
		kind  Kind
		cells []Offset
		w, h  int
	}{
		{KindO, []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, 2, 2},
		{KindT, []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 1}}, 3, 2},
		{KindL, []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 2}}, 3, 2},
		{KindJ, []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 0}}, 3, 2},
		{KindS, []Offset{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, 3, 2},
		{KindZ, []Offset{{0, 1}, {0, 2}, {1, 0}, {1, 1}}, 3, 2},
		{KindI, []Offset{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			cells := Cells(tt.kind, 0)
			assert.ElementsMatch(t, tt.cells, cells[:])
			assert.Equal(t, tt.w, ShapeWidth(tt.kind, 0))
			assert.Equal(t, tt.h, ShapeHeight(tt.kind, 0))
		})
	}
}

func TestCatalogTightBounds(t *testing.T) {
	for _, k := range Kinds {
		for rot := range 4 {
			cells := Cells(k, rot)

			seen := make(map[Offset]bool)
			minR, minC, maxR, maxC := 99, 99, -1, -1
			for _, c := range cells {
				seen[c] = true
				minR, maxR = min(minR, c.Row), max(maxR, c.Row)
				minC, maxC = min(minC, c.Col), max(maxC, c.Col)
			}

			require.Len(t, seen, 4, "%s rot %d has duplicate cells", k, rot)
			assert.Zero(t, minR, "%s rot %d", k, rot)
			assert.Zero(t, minC, "%s rot %d", k, rot)
			assert.Equal(t, maxC+1, ShapeWidth(k, rot), "%s rot %d width", k, rot)
			assert.Equal(t, maxR+1, ShapeHeight(k, rot), "%s rot %d height", k, rot)
		}
	}
}

func TestCatalogRotationWraps(t *testing.T) {
	for _, k := range Kinds {
		assert.Equal(t, Cells(k, 0), Cells(k, 4), "%s", k)
		assert.Equal(t, Cells(k, 3), Cells(k, -1), "%s", k)
		assert.Equal(t, Pivot(k, 1), Pivot(k, -7), "%s", k)
	}
}

func TestCatalogQuarterTurnsSwapExtent(t *testing.T) {
	for _, k := range Kinds {
		assert.Equal(t, ShapeWidth(k, 0), ShapeHeight(k, 1), "%s", k)
		assert.Equal(t, ShapeHeight(k, 0), ShapeWidth(k, 1), "%s", k)
	}
}

func TestVerticalI(t *testing.T) {
	assert.Equal(t, 1, ShapeWidth(KindI, 1))
	assert.Equal(t, 4, ShapeHeight(KindI, 1))
	assert.Equal(t, Offset{Row: 0, Col: 2}, Pivot(KindI, 1))
	assert.Equal(t, Offset{Row: 2, Col: 0}, Pivot(KindI, 0))
}

func TestKindString(t *testing.T) {
	var s string
	for _, k := range Kinds {
		s += k.String()
	}
	assert.Equal(t, "OTLJSZI", s)
	assert.Equal(t, "?", Kind(42).String())
}

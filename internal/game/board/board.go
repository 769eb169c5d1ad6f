// Package board provides geometry for the fixed 5x5 game grid.
package board

import "slices"

// Size is the side length of the square board. Coordinates run
// 0..Size-1 on both axes.
const Size = 5

// Coord is a single cell on the board.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos packs a coordinate into a single integer key.
func (c Coord) Pos() int {
	return c.X*Size + c.Y
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Orientation classifies a run of cells.
type Orientation int

const (
	None Orientation = iota
	Horizontal
	Vertical
)

// LineOrientation reports whether cells form a straight line: all cells
// share one axis coordinate and differ only along the other. Fewer than
// two cells, or any bend, yields None.
func LineOrientation(cells []Coord) Orientation {
	if len(cells) < 2 {
		return None
	}

	sameX, sameY := true, true
	for _, c := range cells[1:] {
		sameX = sameX && c.X == cells[0].X
		sameY = sameY && c.Y == cells[0].Y
	}

	switch {
	case sameY:
		return Horizontal
	case sameX:
		return Vertical
	default:
		return None
	}
}

// Consecutive reports whether values, once sorted, form a contiguous
// integer run. Duplicates count as gaps.
func Consecutive(values []int) bool {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}

	return true
}

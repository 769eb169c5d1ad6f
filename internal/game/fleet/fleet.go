// Package fleet holds a player's ships for one match: layout validation
// and shot resolution.
package fleet

import (
	"slices"

	"github.com/navwar/seabattle/internal/game/board"
)

// ShipCount is the number of ships in a complete fleet.
const ShipCount = 3

// shipSizes is the required size multiset, one ship of each.
var shipSizes = []int{2, 3, 4}

// ShipSpec is a proposed ship placement as submitted by a player.
type ShipSpec struct {
	Size  int           `json:"size" binding:"required"`
	Cells []board.Coord `json:"cells" binding:"required"`
}

// Ship is an accepted ship with its hit state. Cells are immutable for
// the match; only Hits and Sunk mutate.
type Ship struct {
	Size  int           `json:"size"`
	Cells []board.Coord `json:"cells"`
	Hits  []board.Coord `json:"hits"`
	Sunk  bool          `json:"sunk"`
}

func (s *Ship) occupies(c board.Coord) bool {
	return slices.Contains(s.Cells, c)
}

func (s *Ship) hitAt(c board.Coord) bool {
	return slices.Contains(s.Hits, c)
}

// Fleet is the full set of one player's ships for one match.
type Fleet struct {
	Ships []Ship `json:"ships"`
}

// Clone deep-copies the fleet so callers can mutate it without aliasing
// stored state.
func (f Fleet) Clone() Fleet {
	ships := make([]Ship, len(f.Ships))
	for i, s := range f.Ships {
		ships[i] = Ship{
			Size:  s.Size,
			Cells: slices.Clone(s.Cells),
			Hits:  slices.Clone(s.Hits),
			Sunk:  s.Sunk,
		}
	}
	return Fleet{Ships: ships}
}

// Destroyed reports whether every ship in the fleet is sunk.
func (f *Fleet) Destroyed() bool {
	for i := range f.Ships {
		if !f.Ships[i].Sunk {
			return false
		}
	}
	return true
}

package fleet

import (
	"slices"

	"github.com/dolthub/swiss"

	"github.com/navwar/seabattle/internal/apperr"
	"github.com/navwar/seabattle/internal/game/board"
)

// Validate checks a proposed layout and returns the normalized fleet:
// ships with no hits and sunk unset. Rules are checked in submission
// order and the first violation wins, so rejections carry a single
// deterministic reason. A rejected submission leaves no partial state.
func Validate(specs []ShipSpec) (Fleet, error) {
	if len(specs) != ShipCount {
		return Fleet{}, apperr.Newf(apperr.CodeFleetShipCount, "fleet must have exactly %d ships, got %d", ShipCount, len(specs))
	}

	sizes := make([]int, 0, len(specs))
	for _, spec := range specs {
		sizes = append(sizes, spec.Size)
	}
	slices.Sort(sizes)
	if !slices.Equal(sizes, shipSizes) {
		return Fleet{}, apperr.Newf(apperr.CodeFleetSizeSet, "ship sizes must be %v, got %v", shipSizes, sizes)
	}

	occupied := swiss.NewMap[int, struct{}](16)

	for _, spec := range specs {
		if len(spec.Cells) != spec.Size {
			return Fleet{}, apperr.Newf(apperr.CodeFleetCellCount, "ship of size %d has %d cells", spec.Size, len(spec.Cells))
		}

		for _, c := range spec.Cells {
			if !board.InBounds(c.X, c.Y) {
				return Fleet{}, apperr.Newf(apperr.CodeFleetOutOfBounds, "cell (%d, %d) is off the board", c.X, c.Y)
			}
			if occupied.Has(c.Pos()) {
				return Fleet{}, apperr.Newf(apperr.CodeFleetOverlap, "cell (%d, %d) is occupied twice", c.X, c.Y)
			}
			occupied.Put(c.Pos(), struct{}{})
		}

		if len(spec.Cells) < 2 {
			continue
		}

		switch board.LineOrientation(spec.Cells) {
		case board.Horizontal:
			xs := make([]int, 0, len(spec.Cells))
			for _, c := range spec.Cells {
				xs = append(xs, c.X)
			}
			if !board.Consecutive(xs) {
				return Fleet{}, apperr.Newf(apperr.CodeFleetNotContiguous, "ship of size %d has gaps", spec.Size)
			}
		case board.Vertical:
			ys := make([]int, 0, len(spec.Cells))
			for _, c := range spec.Cells {
				ys = append(ys, c.Y)
			}
			if !board.Consecutive(ys) {
				return Fleet{}, apperr.Newf(apperr.CodeFleetNotContiguous, "ship of size %d has gaps", spec.Size)
			}
		default:
			return Fleet{}, apperr.Newf(apperr.CodeFleetNotStraight, "ship of size %d is not a straight line", spec.Size)
		}
	}

	ships := make([]Ship, 0, len(specs))
	for _, spec := range specs {
		ships = append(ships, Ship{
			Size:  spec.Size,
			Cells: slices.Clone(spec.Cells),
			Hits:  []board.Coord{},
		})
	}

	return Fleet{Ships: ships}, nil
}

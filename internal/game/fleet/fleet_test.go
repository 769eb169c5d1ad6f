package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/seabattle/internal/apperr"
	"github.com/navwar/seabattle/internal/game/board"
	"github.com/navwar/seabattle/internal/game/fleet"
)

func cells(pairs ...[2]int) []board.Coord {
	cs := make([]board.Coord, 0, len(pairs))
	for _, p := range pairs {
		cs = append(cs, board.Coord{X: p[0], Y: p[1]})
	}
	return cs
}

// A A A A .
// . . . . .
// B B B . .
// . . . . .
// C C . . .
func validLayout() []fleet.ShipSpec {
	return []fleet.ShipSpec{
		{Size: 4, Cells: cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})},
		{Size: 3, Cells: cells([2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})},
		{Size: 2, Cells: cells([2]int{4, 0}, [2]int{4, 1})},
	}
}

func TestValidate(t *testing.T) {
	t.Run("ValidLayout", func(t *testing.T) {
		fl, err := fleet.Validate(validLayout())
		require.NoError(t, err)

		require.Len(t, fl.Ships, 3)
		for _, s := range fl.Ships {
			assert.Empty(t, s.Hits, "accepted ships start with no hits")
			assert.False(t, s.Sunk)
			assert.Len(t, s.Cells, s.Size)
		}
	})

	t.Run("TooFewShips", func(t *testing.T) {
		_, err := fleet.Validate(validLayout()[:2])
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetShipCount))
	})

	t.Run("TooManyShips", func(t *testing.T) {
		layout := append(validLayout(), fleet.ShipSpec{
			Size:  2,
			Cells: cells([2]int{4, 3}, [2]int{4, 4}),
		})

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetShipCount))
	})

	t.Run("DuplicateSizes", func(t *testing.T) {
		layout := validLayout()
		layout[1] = fleet.ShipSpec{Size: 2, Cells: cells([2]int{2, 0}, [2]int{2, 1})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetSizeSet))
	})

	t.Run("WrongSize", func(t *testing.T) {
		layout := validLayout()
		layout[2] = fleet.ShipSpec{Size: 5, Cells: cells([2]int{4, 0}, [2]int{4, 1}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 4})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetSizeSet))
	})

	t.Run("CellCountMismatch", func(t *testing.T) {
		layout := validLayout()
		layout[1].Cells = layout[1].Cells[:2]

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetCellCount))
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		layout := validLayout()
		layout[2] = fleet.ShipSpec{Size: 2, Cells: cells([2]int{4, 4}, [2]int{4, 5})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetOutOfBounds))
	})

	t.Run("NegativeCoordinate", func(t *testing.T) {
		layout := validLayout()
		layout[2] = fleet.ShipSpec{Size: 2, Cells: cells([2]int{-1, 0}, [2]int{0, 0})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetOutOfBounds))
	})

	t.Run("OverlappingShips", func(t *testing.T) {
		layout := validLayout()
		layout[2] = fleet.ShipSpec{Size: 2, Cells: cells([2]int{2, 0}, [2]int{3, 0})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetOverlap))
	})

	t.Run("DuplicateCellWithinShip", func(t *testing.T) {
		layout := validLayout()
		layout[2] = fleet.ShipSpec{Size: 2, Cells: cells([2]int{4, 0}, [2]int{4, 0})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetOverlap))
	})

	t.Run("DiagonalShip", func(t *testing.T) {
		layout := validLayout()
		layout[2] = fleet.ShipSpec{Size: 2, Cells: cells([2]int{3, 3}, [2]int{4, 4})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetNotStraight))
	})

	t.Run("GapInShip", func(t *testing.T) {
		layout := validLayout()
		layout[2] = fleet.ShipSpec{Size: 2, Cells: cells([2]int{4, 0}, [2]int{4, 2})}

		_, err := fleet.Validate(layout)
		assert.True(t, apperr.IsCode(err, apperr.CodeFleetNotContiguous))
	})

	t.Run("UnorderedCellsAccepted", func(t *testing.T) {
		layout := validLayout()
		layout[0].Cells = cells([2]int{0, 3}, [2]int{0, 0}, [2]int{0, 2}, [2]int{0, 1})

		_, err := fleet.Validate(layout)
		assert.NoError(t, err)
	})
}

func TestApplyShot(t *testing.T) {
	newFleet := func(t *testing.T) fleet.Fleet {
		t.Helper()
		fl, err := fleet.Validate(validLayout())
		require.NoError(t, err)
		return fl
	}

	t.Run("Miss", func(t *testing.T) {
		fl := newFleet(t)

		eff := fl.ApplyShot(board.Coord{X: 1, Y: 1})
		assert.Equal(t, fleet.Miss, eff.Outcome)
		for _, s := range fl.Ships {
			assert.Empty(t, s.Hits, "miss must not mutate the fleet")
		}
	})

	t.Run("Hit", func(t *testing.T) {
		fl := newFleet(t)

		eff := fl.ApplyShot(board.Coord{X: 0, Y: 0})
		assert.Equal(t, fleet.Hit, eff.Outcome)
		assert.False(t, fl.Ships[0].Sunk)
	})

	t.Run("Sunk", func(t *testing.T) {
		fl := newFleet(t)

		eff := fl.ApplyShot(board.Coord{X: 4, Y: 0})
		require.Equal(t, fleet.Hit, eff.Outcome)

		eff = fl.ApplyShot(board.Coord{X: 4, Y: 1})
		assert.Equal(t, fleet.Sunk, eff.Outcome)
		assert.Equal(t, 2, eff.ShipSize)
		assert.True(t, fl.Ships[2].Sunk)
	})

	t.Run("RepeatedHitNotDoubleCounted", func(t *testing.T) {
		fl := newFleet(t)

		fl.ApplyShot(board.Coord{X: 4, Y: 0})
		eff := fl.ApplyShot(board.Coord{X: 4, Y: 0})
		assert.Equal(t, fleet.Hit, eff.Outcome, "ship must not sink from hitting one cell twice")
		assert.Len(t, fl.Ships[2].Hits, 1)
	})
}

func TestDestroyed(t *testing.T) {
	fl, err := fleet.Validate(validLayout())
	require.NoError(t, err)

	var last fleet.ShotEffect
	for _, s := range fl.Ships {
		for _, c := range s.Cells {
			assert.False(t, fl.Destroyed())
			last = fl.ApplyShot(c)
		}
	}

	assert.Equal(t, fleet.Sunk, last.Outcome)
	assert.True(t, fl.Destroyed())
}

func TestClone(t *testing.T) {
	fl, err := fleet.Validate(validLayout())
	require.NoError(t, err)

	clone := fl.Clone()
	clone.ApplyShot(board.Coord{X: 0, Y: 0})

	assert.Empty(t, fl.Ships[0].Hits, "mutating a clone must not touch the original")
	assert.Len(t, clone.Ships[0].Hits, 1)
}

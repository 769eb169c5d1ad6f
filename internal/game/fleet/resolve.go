package fleet

import "github.com/navwar/seabattle/internal/game/board"

// ShotEffect is the resolver's classification of one shot.
type ShotEffect struct {
	Outcome  Outcome
	ShipSize int // set when Outcome is Sunk
}

// ApplyShot resolves a shot against the fleet. A shot on a ship cell is
// recorded as a hit; when every cell of that ship is hit it is marked
// sunk. A shot on open water leaves the fleet unchanged.
//
// The resolver never inspects turn order or match phase; repeated shots
// at the same cell are rejected upstream.
func (f *Fleet) ApplyShot(c board.Coord) ShotEffect {
	for i := range f.Ships {
		s := &f.Ships[i]
		if !s.occupies(c) {
			continue
		}

		if !s.hitAt(c) {
			s.Hits = append(s.Hits, c)
		}

		if len(s.Hits) == len(s.Cells) {
			s.Sunk = true
			return ShotEffect{Outcome: Sunk, ShipSize: s.Size}
		}

		return ShotEffect{Outcome: Hit}
	}

	return ShotEffect{Outcome: Miss}
}

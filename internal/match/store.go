package match

import (
	"context"
	"errors"

	"github.com/navwar/seabattle/internal/game/fleet"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// MatchFilter narrows ListMatches results. Zero fields are ignored.
type MatchFilter struct {
	// Phases keeps matches in any of the given phases.
	Phases []Phase
	// PlayerID keeps matches where this player is seated.
	PlayerID string
}

// Store persists match, fleet and shot records. The engine serializes
// mutating operations per match, so implementations only need each
// individual call to be atomic.
type Store interface {
	GetMatch(ctx context.Context, id string) (Match, error)
	PutMatch(ctx context.Context, m Match) error
	ListMatches(ctx context.Context, filter MatchFilter) ([]Match, error)

	GetFleet(ctx context.Context, matchID, playerID string) (fleet.Fleet, error)
	PutFleet(ctx context.Context, matchID, playerID string, fl fleet.Fleet) error

	ListShots(ctx context.Context, matchID string) ([]Shot, error)
	PutShot(ctx context.Context, s Shot) error
}

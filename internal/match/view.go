package match

import (
	"context"
	"errors"

	"github.com/navwar/seabattle/internal/apperr"
	"github.com/navwar/seabattle/internal/game/fleet"
)

// BoardView is what one seated player may see of a match: their own
// ships with hit markers and both shot histories. Unfired-upon opponent
// ship cells are never exposed.
type BoardView struct {
	OwnShips      []fleet.Ship `json:"own_ships"`
	OwnShots      []Shot       `json:"own_shots"`
	OpponentShots []Shot       `json:"opponent_shots"`
	Turn          string       `json:"turn,omitempty"`
	Phase         Phase        `json:"phase"`
}

// Get returns the match record to a seated player.
func (e *Engine) Get(ctx context.Context, matchID, viewerID string) (Match, error) {
	m, err := e.getMatch(ctx, matchID)
	if err != nil {
		return Match{}, err
	}

	if !m.HasPlayer(viewerID) {
		return Match{}, apperr.New(apperr.CodeNotParticipant, "not a player in this match")
	}

	return m, nil
}

// View assembles the viewer's board. It takes the match lock so the
// snapshot is consistent with in-flight shots.
func (e *Engine) View(ctx context.Context, matchID, viewerID string) (BoardView, error) {
	unlock, err := e.locks.lock(ctx, matchID)
	if err != nil {
		return BoardView{}, err
	}
	defer unlock()

	m, err := e.getMatch(ctx, matchID)
	if err != nil {
		return BoardView{}, err
	}

	if !m.HasPlayer(viewerID) {
		return BoardView{}, apperr.New(apperr.CodeNotParticipant, "not a player in this match")
	}

	fl, err := e.store.GetFleet(ctx, matchID, viewerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return BoardView{}, apperr.New(apperr.CodeFleetNotFound, "fleet not found")
		}
		return BoardView{}, err
	}

	shots, err := e.store.ListShots(ctx, matchID)
	if err != nil {
		return BoardView{}, err
	}

	view := BoardView{
		OwnShips:      fl.Ships,
		OwnShots:      []Shot{},
		OpponentShots: []Shot{},
		Turn:          m.Turn,
		Phase:         m.Phase,
	}

	for _, s := range shots {
		if s.ShooterID == viewerID {
			view.OwnShots = append(view.OwnShots, s)
		} else {
			view.OpponentShots = append(view.OpponentShots, s)
		}
	}

	return view, nil
}

// ListOpen returns matches still waiting for an opponent.
func (e *Engine) ListOpen(ctx context.Context) ([]Match, error) {
	return e.store.ListMatches(ctx, MatchFilter{
		Phases: []Phase{Waiting},
	})
}

// ListFor returns the player's unfinished matches.
func (e *Engine) ListFor(ctx context.Context, playerID string) ([]Match, error) {
	return e.store.ListMatches(ctx, MatchFilter{
		Phases:   []Phase{Waiting, Active},
		PlayerID: playerID,
	})
}

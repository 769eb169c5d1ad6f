package match

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/navwar/seabattle/internal/apperr"
	"github.com/navwar/seabattle/internal/game/board"
	"github.com/navwar/seabattle/internal/game/fleet"
)

// ShotResult reports a resolved shot back to the shooter.
type ShotResult struct {
	Outcome  fleet.Outcome `json:"outcome"`
	ShipSize int           `json:"ship_size,omitempty"`
	GameOver bool          `json:"game_over"`
	WinnerID string        `json:"winner_id,omitempty"`
}

// Engine applies the game rules on top of a Store. Operations on
// different matches are independent; operations on one match are
// serialized through a per-match lock.
type Engine struct {
	store Store
	locks *locker
}

func NewEngine(store Store) *Engine {
	return &Engine{
		store: store,
		locks: newLocker(),
	}
}

// Create validates the creator's fleet and opens a match waiting for an
// opponent. No turn is set until a second player joins.
func (e *Engine) Create(ctx context.Context, creatorID string, ships []fleet.ShipSpec) (Match, error) {
	fl, err := fleet.Validate(ships)
	if err != nil {
		return Match{}, err
	}

	m := Match{
		ID:        uuid.NewString(),
		CreatorID: creatorID,
		Phase:     Waiting,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.store.PutMatch(ctx, m); err != nil {
		return Match{}, err
	}
	if err := e.store.PutFleet(ctx, m.ID, creatorID, fl); err != nil {
		return Match{}, err
	}

	return m, nil
}

// Join seats a second player. The match becomes active and the creator
// takes the first turn, a fixed tie-break.
func (e *Engine) Join(ctx context.Context, matchID, joinerID string, ships []fleet.ShipSpec) (Match, error) {
	unlock, err := e.locks.lock(ctx, matchID)
	if err != nil {
		return Match{}, err
	}
	defer unlock()

	m, err := e.getMatch(ctx, matchID)
	if err != nil {
		return Match{}, err
	}

	if m.Phase != Waiting {
		return Match{}, apperr.New(apperr.CodeMatchNotJoinable, "match is not open for joining")
	}
	if m.CreatorID == joinerID {
		return Match{}, apperr.New(apperr.CodeMatchSelfJoin, "cannot join your own match")
	}

	fl, err := fleet.Validate(ships)
	if err != nil {
		return Match{}, err
	}

	m.OpponentID = joinerID
	m.Phase = Active
	m.Turn = m.CreatorID

	if err := e.store.PutFleet(ctx, m.ID, joinerID, fl); err != nil {
		return Match{}, err
	}
	if err := e.store.PutMatch(ctx, m); err != nil {
		return Match{}, err
	}

	return m, nil
}

// Fire resolves one shot by the player whose turn it is. Each cell may
// be targeted at most once per shooter, a previous miss included. The
// shot that sinks the last ship finishes the match; any other shot
// passes the turn to the defender.
func (e *Engine) Fire(ctx context.Context, matchID, shooterID string, x, y int) (ShotResult, error) {
	unlock, err := e.locks.lock(ctx, matchID)
	if err != nil {
		return ShotResult{}, err
	}
	defer unlock()

	m, err := e.getMatch(ctx, matchID)
	if err != nil {
		return ShotResult{}, err
	}

	if m.Phase != Active {
		return ShotResult{}, apperr.New(apperr.CodeMatchNotActive, "match is not in progress")
	}
	if !m.HasPlayer(shooterID) {
		return ShotResult{}, apperr.New(apperr.CodeNotParticipant, "not a player in this match")
	}
	if m.Turn != shooterID {
		return ShotResult{}, apperr.New(apperr.CodeNotYourTurn, "not your turn")
	}

	shots, err := e.store.ListShots(ctx, matchID)
	if err != nil {
		return ShotResult{}, err
	}
	for _, s := range shots {
		if s.ShooterID == shooterID && s.X == x && s.Y == y {
			return ShotResult{}, apperr.Newf(apperr.CodeCellAlreadyTargeted, "cell (%d, %d) already targeted", x, y)
		}
	}

	defenderID := m.Opponent(shooterID)
	fl, err := e.store.GetFleet(ctx, matchID, defenderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ShotResult{}, apperr.New(apperr.CodeFleetNotFound, "defender fleet not found")
		}
		return ShotResult{}, err
	}

	eff := fl.ApplyShot(board.Coord{X: x, Y: y})

	res := ShotResult{
		Outcome:  eff.Outcome,
		ShipSize: eff.ShipSize,
	}

	if fl.Destroyed() {
		m.Phase = Finished
		m.Turn = ""
		m.WinnerID = shooterID
		res.GameOver = true
		res.WinnerID = shooterID
	} else {
		m.Turn = defenderID
	}

	if err := e.store.PutFleet(ctx, matchID, defenderID, fl); err != nil {
		return ShotResult{}, err
	}
	if err := e.store.PutShot(ctx, Shot{
		MatchID:   matchID,
		ShooterID: shooterID,
		X:         x,
		Y:         y,
		Outcome:   eff.Outcome,
		FiredAt:   time.Now().UTC(),
	}); err != nil {
		return ShotResult{}, err
	}
	if err := e.store.PutMatch(ctx, m); err != nil {
		return ShotResult{}, err
	}

	return res, nil
}

// Concede finishes an active match in favor of the other seated player.
// A player may concede regardless of whose turn it is.
func (e *Engine) Concede(ctx context.Context, matchID, playerID string) (Match, error) {
	unlock, err := e.locks.lock(ctx, matchID)
	if err != nil {
		return Match{}, err
	}
	defer unlock()

	m, err := e.getMatch(ctx, matchID)
	if err != nil {
		return Match{}, err
	}

	if m.Phase != Active {
		return Match{}, apperr.New(apperr.CodeMatchNotActive, "match is not in progress")
	}
	if !m.HasPlayer(playerID) {
		return Match{}, apperr.New(apperr.CodeNotParticipant, "not a player in this match")
	}

	m.Phase = Finished
	m.Turn = ""
	m.WinnerID = m.Opponent(playerID)

	if err := e.store.PutMatch(ctx, m); err != nil {
		return Match{}, err
	}

	return m, nil
}

func (e *Engine) getMatch(ctx context.Context, id string) (Match, error) {
	m, err := e.store.GetMatch(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Match{}, apperr.New(apperr.CodeMatchNotFound, "match not found")
	}
	return m, err
}

package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/seabattle/internal/game/board"
	"github.com/navwar/seabattle/internal/game/fleet"
	"github.com/navwar/seabattle/internal/match"
	"github.com/navwar/seabattle/internal/storage/memory"
)

func testFleet(t *testing.T) fleet.Fleet {
	t.Helper()
	fl, err := fleet.Validate([]fleet.ShipSpec{
		{Size: 4, Cells: []board.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}},
		{Size: 3, Cells: []board.Coord{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}},
		{Size: 2, Cells: []board.Coord{{X: 4, Y: 0}, {X: 4, Y: 1}}},
	})
	require.NoError(t, err)
	return fl
}

func TestMatchRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.GetMatch(ctx, "missing")
	assert.ErrorIs(t, err, match.ErrNotFound)

	m := match.Match{
		ID:        "m-1",
		CreatorID: "p-1",
		Phase:     match.Waiting,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.PutMatch(ctx, m))

	got, err := store.GetMatch(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, m, got)

	// Put is an upsert.
	m.Phase = match.Active
	m.OpponentID = "p-2"
	m.Turn = "p-1"
	require.NoError(t, store.PutMatch(ctx, m))

	got, err = store.GetMatch(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, match.Active, got.Phase)
	assert.Equal(t, "p-2", got.OpponentID)
}

func TestListMatchesFilters(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	base := time.Now().UTC()
	require.NoError(t, store.PutMatch(ctx, match.Match{ID: "m-1", CreatorID: "p-1", Phase: match.Waiting, CreatedAt: base}))
	require.NoError(t, store.PutMatch(ctx, match.Match{ID: "m-2", CreatorID: "p-2", OpponentID: "p-1", Phase: match.Active, CreatedAt: base.Add(time.Second)}))
	require.NoError(t, store.PutMatch(ctx, match.Match{ID: "m-3", CreatorID: "p-3", Phase: match.Finished, CreatedAt: base.Add(2 * time.Second)}))

	waiting, err := store.ListMatches(ctx, match.MatchFilter{Phases: []match.Phase{match.Waiting}})
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, "m-1", waiting[0].ID)

	mine, err := store.ListMatches(ctx, match.MatchFilter{
		Phases:   []match.Phase{match.Waiting, match.Active},
		PlayerID: "p-1",
	})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "m-1", mine[0].ID, "oldest first")
	assert.Equal(t, "m-2", mine[1].ID)

	all, err := store.ListMatches(ctx, match.MatchFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFleetIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.GetFleet(ctx, "m-1", "p-1")
	assert.ErrorIs(t, err, match.ErrNotFound)

	fl := testFleet(t)
	require.NoError(t, store.PutFleet(ctx, "m-1", "p-1", fl))

	got, err := store.GetFleet(ctx, "m-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, fl, got)

	// Mutating a loaded copy must not leak into the store.
	got.ApplyShot(board.Coord{X: 0, Y: 0})

	fresh, err := store.GetFleet(ctx, "m-1", "p-1")
	require.NoError(t, err)
	assert.Empty(t, fresh.Ships[0].Hits)
}

func TestShotsAppendInOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	shots, err := store.ListShots(ctx, "m-1")
	require.NoError(t, err)
	assert.Empty(t, shots)

	now := time.Now().UTC()
	require.NoError(t, store.PutShot(ctx, match.Shot{MatchID: "m-1", ShooterID: "p-1", X: 0, Y: 0, Outcome: fleet.Hit, FiredAt: now}))
	require.NoError(t, store.PutShot(ctx, match.Shot{MatchID: "m-1", ShooterID: "p-2", X: 4, Y: 4, Outcome: fleet.Miss, FiredAt: now}))

	shots, err = store.ListShots(ctx, "m-1")
	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.Equal(t, "p-1", shots[0].ShooterID)
	assert.Equal(t, "p-2", shots[1].ShooterID)

	other, err := store.ListShots(ctx, "m-2")
	require.NoError(t, err)
	assert.Empty(t, other, "shots are scoped per match")
}

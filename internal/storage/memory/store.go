// Package memory provides an in-process match.Store for tests and
// single-node deployments.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dolthub/swiss"

	"github.com/navwar/seabattle/internal/game/fleet"
	"github.com/navwar/seabattle/internal/match"
)

type fleetKey struct {
	matchID  string
	playerID string
}

// Store keeps all records in memory. Reads and writes hand out deep
// copies, so callers never alias stored state.
type Store struct {
	mu      sync.RWMutex
	matches *swiss.Map[string, match.Match]
	fleets  *swiss.Map[fleetKey, fleet.Fleet]
	shots   map[string][]match.Shot
}

var _ match.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		matches: swiss.NewMap[string, match.Match](64),
		fleets:  swiss.NewMap[fleetKey, fleet.Fleet](64),
		shots:   make(map[string][]match.Shot),
	}
}

func (s *Store) GetMatch(_ context.Context, id string) (match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches.Get(id)
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return m, nil
}

func (s *Store) PutMatch(_ context.Context, m match.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches.Put(m.ID, m)
	return nil
}

func (s *Store) ListMatches(_ context.Context, filter match.MatchFilter) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]match.Match, 0)
	s.matches.Iter(func(_ string, m match.Match) (stop bool) {
		if matchesFilter(m, filter) {
			matches = append(matches, m)
		}
		return
	})

	slices.SortFunc(matches, func(a, b match.Match) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return matches, nil
}

func matchesFilter(m match.Match, filter match.MatchFilter) bool {
	if len(filter.Phases) > 0 && !slices.Contains(filter.Phases, m.Phase) {
		return false
	}
	if filter.PlayerID != "" && !m.HasPlayer(filter.PlayerID) {
		return false
	}
	return true
}

func (s *Store) GetFleet(_ context.Context, matchID, playerID string) (fleet.Fleet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fl, ok := s.fleets.Get(fleetKey{matchID, playerID})
	if !ok {
		return fleet.Fleet{}, match.ErrNotFound
	}
	return fl.Clone(), nil
}

func (s *Store) PutFleet(_ context.Context, matchID, playerID string, fl fleet.Fleet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fleets.Put(fleetKey{matchID, playerID}, fl.Clone())
	return nil
}

func (s *Store) ListShots(_ context.Context, matchID string) ([]match.Shot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.shots[matchID]), nil
}

func (s *Store) PutShot(_ context.Context, shot match.Shot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shots[shot.MatchID] = append(s.shots[shot.MatchID], shot)
	return nil
}

// Package sqlite persists match state in a single SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/navwar/seabattle/internal/game/fleet"
	"github.com/navwar/seabattle/internal/match"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id TEXT PRIMARY KEY,
	creator_id TEXT NOT NULL,
	opponent_id TEXT NOT NULL DEFAULT '',
	phase TEXT NOT NULL,
	turn TEXT NOT NULL DEFAULT '',
	winner_id TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS fleets (
	match_id TEXT NOT NULL,
	player_id TEXT NOT NULL,
	ships TEXT NOT NULL,
	PRIMARY KEY (match_id, player_id)
);

CREATE TABLE IF NOT EXISTS shots (
	match_id TEXT NOT NULL,
	shooter_id TEXT NOT NULL,
	x INTEGER NOT NULL,
	y INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	fired_at INTEGER NOT NULL,
	PRIMARY KEY (match_id, shooter_id, x, y)
);

CREATE INDEX IF NOT EXISTS shots_by_match ON shots (match_id, fired_at);
`

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements match persistence over SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ match.Store = (*Store)(nil)

// Open opens the SQLite store at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) GetMatch(ctx context.Context, id string) (match.Match, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, creator_id, opponent_id, phase, turn, winner_id, created_at
		FROM matches WHERE id = ?`, id)

	return scanMatch(row)
}

func (s *Store) PutMatch(ctx context.Context, m match.Match) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO matches (id, creator_id, opponent_id, phase, turn, winner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			opponent_id = excluded.opponent_id,
			phase = excluded.phase,
			turn = excluded.turn,
			winner_id = excluded.winner_id`,
		m.ID, m.CreatorID, m.OpponentID, m.Phase.String(), m.Turn, m.WinnerID, toMillis(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("put match: %w", err)
	}
	return nil
}

func (s *Store) ListMatches(ctx context.Context, filter match.MatchFilter) ([]match.Match, error) {
	query := `
		SELECT id, creator_id, opponent_id, phase, turn, winner_id, created_at
		FROM matches WHERE 1=1`
	args := make([]any, 0, 4)

	if len(filter.Phases) > 0 {
		query += " AND phase IN (?" + strings.Repeat(", ?", len(filter.Phases)-1) + ")"
		for _, p := range filter.Phases {
			args = append(args, p.String())
		}
	}
	if filter.PlayerID != "" {
		query += " AND (creator_id = ? OR opponent_id = ?)"
		args = append(args, filter.PlayerID, filter.PlayerID)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	matches := make([]match.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (match.Match, error) {
	var m match.Match
	var phase string
	var createdAt int64

	err := row.Scan(&m.ID, &m.CreatorID, &m.OpponentID, &phase, &m.Turn, &m.WinnerID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Match{}, match.ErrNotFound
	}
	if err != nil {
		return match.Match{}, fmt.Errorf("scan match: %w", err)
	}

	if err := m.Phase.FromString(phase); err != nil {
		return match.Match{}, err
	}
	m.CreatedAt = fromMillis(createdAt)

	return m, nil
}

func (s *Store) GetFleet(ctx context.Context, matchID, playerID string) (fleet.Fleet, error) {
	var ships string
	err := s.sqlDB.QueryRowContext(ctx, `
		SELECT ships FROM fleets WHERE match_id = ? AND player_id = ?`,
		matchID, playerID).Scan(&ships)
	if errors.Is(err, sql.ErrNoRows) {
		return fleet.Fleet{}, match.ErrNotFound
	}
	if err != nil {
		return fleet.Fleet{}, fmt.Errorf("get fleet: %w", err)
	}

	var fl fleet.Fleet
	if err := json.Unmarshal([]byte(ships), &fl.Ships); err != nil {
		return fleet.Fleet{}, fmt.Errorf("decode fleet: %w", err)
	}

	return fl, nil
}

func (s *Store) PutFleet(ctx context.Context, matchID, playerID string, fl fleet.Fleet) error {
	ships, err := json.Marshal(fl.Ships)
	if err != nil {
		return fmt.Errorf("encode fleet: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT INTO fleets (match_id, player_id, ships)
		VALUES (?, ?, ?)
		ON CONFLICT (match_id, player_id) DO UPDATE SET ships = excluded.ships`,
		matchID, playerID, string(ships))
	if err != nil {
		return fmt.Errorf("put fleet: %w", err)
	}
	return nil
}

func (s *Store) ListShots(ctx context.Context, matchID string) ([]match.Shot, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT match_id, shooter_id, x, y, outcome, fired_at
		FROM shots WHERE match_id = ?
		ORDER BY fired_at, rowid`, matchID)
	if err != nil {
		return nil, fmt.Errorf("list shots: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	shots := make([]match.Shot, 0)
	for rows.Next() {
		var shot match.Shot
		var outcome string
		var firedAt int64

		if err := rows.Scan(&shot.MatchID, &shot.ShooterID, &shot.X, &shot.Y, &outcome, &firedAt); err != nil {
			return nil, fmt.Errorf("scan shot: %w", err)
		}
		if err := shot.Outcome.FromString(outcome); err != nil {
			return nil, err
		}
		shot.FiredAt = fromMillis(firedAt)

		shots = append(shots, shot)
	}

	return shots, rows.Err()
}

func (s *Store) PutShot(ctx context.Context, shot match.Shot) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO shots (match_id, shooter_id, x, y, outcome, fired_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		shot.MatchID, shot.ShooterID, shot.X, shot.Y, shot.Outcome.String(), toMillis(shot.FiredAt))
	if err != nil {
		return fmt.Errorf("put shot: %w", err)
	}
	return nil
}

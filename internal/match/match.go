// Package match drives the game lifecycle: seating fleets, sequencing
// turns, resolving shots and detecting the winner.
package match

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/navwar/seabattle/internal/game/fleet"
)

// Phase is the lifecycle stage of a match.
type Phase int

const (
	Waiting Phase = iota
	Active
	Finished
)

func (p *Phase) FromString(str string) error {
	switch str {
	case "waiting":
		*p = Waiting
	case "active":
		*p = Active
	case "finished":
		*p = Finished
	default:
		return fmt.Errorf("invalid match phase: %q", str)
	}
	return nil
}

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Active:
		return "active"
	case Finished:
		return "finished"
	default:
		panic("invalid match phase")
	}
}

func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Match is one game between two players. The engine is the sole writer
// of Phase, Turn and WinnerID.
type Match struct {
	ID         string    `json:"id"`
	CreatorID  string    `json:"creator_id"`
	OpponentID string    `json:"opponent_id,omitempty"`
	Phase      Phase     `json:"phase"`
	Turn       string    `json:"turn,omitempty"`
	WinnerID   string    `json:"winner_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasPlayer reports whether playerID is seated in the match.
func (m Match) HasPlayer(playerID string) bool {
	return playerID == m.CreatorID || (m.OpponentID != "" && playerID == m.OpponentID)
}

// Opponent returns the player seated across from playerID.
func (m Match) Opponent(playerID string) string {
	if playerID == m.CreatorID {
		return m.OpponentID
	}
	return m.CreatorID
}

// Shot is one recorded move. Shots are append-only and unique per
// (match, shooter, cell) for the whole match.
type Shot struct {
	MatchID   string        `json:"match_id"`
	ShooterID string        `json:"shooter_id"`
	X         int           `json:"x"`
	Y         int           `json:"y"`
	Outcome   fleet.Outcome `json:"outcome"`
	FiredAt   time.Time     `json:"fired_at"`
}

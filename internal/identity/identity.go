// Package identity resolves opaque bearer tokens to stable player ids.
// The engine never interprets identity beyond using the id as a key.
package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrUnknownToken indicates the token does not map to a player.
var ErrUnknownToken = errors.New("unknown token")

// Provider resolves a caller's token to a stable player id.
type Provider interface {
	Resolve(ctx context.Context, token string) (playerID string, err error)
}

// Registry is an in-memory token table. Real deployments would back
// this with an account service; the engine only ever sees player ids.
type Registry struct {
	mu      sync.RWMutex
	byToken map[string]string
}

var _ Provider = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		byToken: make(map[string]string),
	}
}

// Issue registers a new player and returns its id and bearer token.
func (r *Registry) Issue() (playerID, token string) {
	playerID = uuid.NewString()
	token = uuid.NewString()

	r.mu.Lock()
	r.byToken[token] = playerID
	r.mu.Unlock()

	return playerID, token
}

func (r *Registry) Resolve(_ context.Context, token string) (string, error) {
	r.mu.RLock()
	playerID, ok := r.byToken[token]
	r.mu.RUnlock()

	if !ok {
		return "", ErrUnknownToken
	}
	return playerID, nil
}

// Package memory provides an in-process record store for tests and
// ephemeral runs. Unlike a map-keyed store, the games record keeps its
// order: ordering is part of the persisted contract.
package memory

import (
	"context"
	"sync"

	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/users"
	"leaguehub/internal/storage"
)

// Store is an in-memory storage.Store.
type Store struct {
	mu         sync.RWMutex
	games      []games.Game
	hasGames   bool
	session    users.Profile
	hasSession bool

	// FailWrites makes every save return this error, for exercising the
	// persistence-failure path.
	FailWrites error
}

// New constructs an empty Store.
func New() *Store {
	return &Store{}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// LoadGames returns a copy of the stored games collection.
func (s *Store) LoadGames(ctx context.Context) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasGames {
		return nil, storage.ErrNotFound
	}
	out := make([]games.Game, len(s.games))
	copy(out, s.games)
	return out, nil
}

// SaveGames replaces the games record.
func (s *Store) SaveGames(ctx context.Context, list []games.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.games = make([]games.Game, len(list))
	copy(s.games, list)
	s.hasGames = true
	return nil
}

// LoadSession returns the stored profile.
func (s *Store) LoadSession(ctx context.Context) (users.Profile, error) {
	if err := ctx.Err(); err != nil {
		return users.Profile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSession {
		return users.Profile{}, storage.ErrNotFound
	}
	return s.session, nil
}

// SaveSession replaces the session record.
func (s *Store) SaveSession(ctx context.Context, profile users.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.session = profile
	s.hasSession = true
	return nil
}

// DeleteSession removes the session record.
func (s *Store) DeleteSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = users.Profile{}
	s.hasSession = false
	return nil
}

// Package storage defines the durable record store behind the registry and
// the session. The layout is two independent named records: the full games
// collection and the current user profile. Each record round-trips as a
// whole; there is no incremental diffing.
package storage

import (
	"context"
	"errors"

	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/users"
)

// Record names are part of the on-disk contract and mirror the keys the
// original deployment used.
const (
	GamesRecord   = "leaguehub_games"
	SessionRecord = "leaguehub_user"
)

// ErrNotFound indicates a requested record is absent.
var ErrNotFound = errors.New("record not found")

// Store persists the two durable records.
type Store interface {
	// LoadGames returns the stored games collection in stored order, or
	// ErrNotFound when the record has never been written.
	LoadGames(ctx context.Context) ([]games.Game, error)
	// SaveGames replaces the games record with the full collection.
	SaveGames(ctx context.Context, list []games.Game) error

	// LoadSession returns the stored profile, or ErrNotFound when absent.
	LoadSession(ctx context.Context) (users.Profile, error)
	// SaveSession replaces the session record.
	SaveSession(ctx context.Context, profile users.Profile) error
	// DeleteSession removes the session record. Deleting an absent record
	// is not an error.
	DeleteSession(ctx context.Context) error

	Close() error
}

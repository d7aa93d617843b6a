// Package file provides a record store backed by plain JSON files, one per
// record. Writes go through a temp file and rename so a crash never leaves a
// partially written record behind.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/users"
	"leaguehub/internal/storage"
)

// Store keeps each record at {basePath}/{record}.json.
type Store struct {
	basePath string
}

// Open prepares a file store rooted at basePath, creating it if needed.
func Open(basePath string) (*Store, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{basePath: filepath.Clean(basePath)}, nil
}

// Close is a no-op; files are closed per operation.
func (s *Store) Close() error { return nil }

// LoadGames reads the games record.
func (s *Store) LoadGames(ctx context.Context) ([]games.Game, error) {
	var list []games.Game
	if err := s.read(ctx, storage.GamesRecord, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveGames replaces the games record with the full collection.
func (s *Store) SaveGames(ctx context.Context, list []games.Game) error {
	if list == nil {
		list = []games.Game{}
	}
	return s.write(ctx, storage.GamesRecord, list)
}

// LoadSession reads the session record.
func (s *Store) LoadSession(ctx context.Context) (users.Profile, error) {
	var profile users.Profile
	if err := s.read(ctx, storage.SessionRecord, &profile); err != nil {
		return users.Profile{}, err
	}
	return profile, nil
}

// SaveSession replaces the session record.
func (s *Store) SaveSession(ctx context.Context, profile users.Profile) error {
	return s.write(ctx, storage.SessionRecord, profile)
}

// DeleteSession removes the session record.
func (s *Store) DeleteSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(s.path(storage.SessionRecord))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(record string) string {
	return filepath.Join(s.basePath, record+".json")
}

func (s *Store) read(ctx context.Context, record string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(s.path(record))
	if err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotFound
		}
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return fmt.Errorf("decode %s: %w", record, err)
	}
	return nil
}

func (s *Store) write(ctx context.Context, record string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.path(record)

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", record, err)
	}

	// Identical content means the record is already current.
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Package bolt provides the default bbolt-backed record store.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/users"
	"leaguehub/internal/storage"
)

const recordsBucket = "records"

// Store is a bbolt-backed storage.Store.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadGames reads the games record.
func (s *Store) LoadGames(ctx context.Context) ([]games.Game, error) {
	var list []games.Game
	if err := s.get(ctx, storage.GamesRecord, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveGames replaces the games record with the full collection.
func (s *Store) SaveGames(ctx context.Context, list []games.Game) error {
	if list == nil {
		list = []games.Game{}
	}
	return s.put(ctx, storage.GamesRecord, list)
}

// LoadSession reads the session record.
func (s *Store) LoadSession(ctx context.Context) (users.Profile, error) {
	var profile users.Profile
	if err := s.get(ctx, storage.SessionRecord, &profile); err != nil {
		return users.Profile{}, err
	}
	return profile, nil
}

// SaveSession replaces the session record.
func (s *Store) SaveSession(ctx context.Context, profile users.Profile) error {
	return s.put(ctx, storage.SessionRecord, profile)
}

// DeleteSession removes the session record.
func (s *Store) DeleteSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(recordsBucket))
		if bucket == nil {
			return fmt.Errorf("records bucket is missing")
		}
		return bucket.Delete([]byte(storage.SessionRecord))
	})
}

func (s *Store) put(ctx context.Context, record string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", record, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(recordsBucket))
		if bucket == nil {
			return fmt.Errorf("records bucket is missing")
		}
		return bucket.Put([]byte(record), data)
	})
}

func (s *Store) get(ctx context.Context, record string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(recordsBucket))
		if bucket == nil {
			return fmt.Errorf("records bucket is missing")
		}
		data := bucket.Get([]byte(record))
		if data == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(data, payload); err != nil {
			return fmt.Errorf("unmarshal %s: %w", record, err)
		}
		return nil
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(recordsBucket)); err != nil {
			return fmt.Errorf("create records bucket: %w", err)
		}
		return nil
	})
}

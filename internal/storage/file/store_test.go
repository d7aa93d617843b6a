package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/users"
	"leaguehub/internal/storage"
)

func TestGamesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	list := []games.Game{
		{ID: "g3", Status: games.StatusFinal, HomeScore: 24, AwayScore: 21, Sport: "Football"},
		{ID: "g1", Status: games.StatusUpcoming, ScheduledTime: "2024-05-01T18:00:00Z"},
	}
	if err := s.SaveGames(ctx, list); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadGames(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, list) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, list)
	}

	// The record lives at a predictable path.
	if _, err := os.Stat(filepath.Join(dir, storage.GamesRecord+".json")); err != nil {
		t.Fatalf("expected games record file: %v", err)
	}
}

func TestMissingRecords(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.LoadGames(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.LoadSession(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionDelete(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	profile := users.Profile{ID: "u9", Name: "Asha", Role: users.RoleViewer, Status: users.StatusApproved}
	if err := s.SaveSession(ctx, profile); err != nil {
		t.Fatalf("save session: %v", err)
	}
	if err := s.DeleteSession(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.LoadSession(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteSession(ctx); err != nil {
		t.Fatalf("deleting absent record should be clean: %v", err)
	}
}

func TestIdenticalWriteKeepsFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	list := []games.Game{{ID: "g1"}}

	if err := s.SaveGames(ctx, list); err != nil {
		t.Fatalf("first save: %v", err)
	}
	first, err := os.Stat(filepath.Join(dir, storage.GamesRecord+".json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if err := s.SaveGames(ctx, list); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second, err := os.Stat(filepath.Join(dir, storage.GamesRecord+".json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !first.ModTime().Equal(second.ModTime()) {
		t.Fatalf("identical write should not rewrite the record")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

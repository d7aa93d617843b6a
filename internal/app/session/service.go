// Package session owns the current user profile and mirrors it to the
// durable session record. Role assignment and approval are deliberately
// separate from profile self-editing: they belong to an administrative
// boundary, not to the signed-in user.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"leaguehub/internal/domain/users"
	"leaguehub/internal/logging"
	"leaguehub/internal/metrics"
	"leaguehub/internal/storage"
)

var (
	// ErrNoSession indicates an operation that needs a signed-in user.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidRole indicates an unknown role value.
	ErrInvalidRole = errors.New("invalid role")
)

// Service is the identity and session store.
type Service struct {
	mu      sync.RWMutex
	profile *users.Profile

	store    storage.Store
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewService constructs a session store over the given record store.
func NewService(store storage.Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{store: store, logger: logger, recorder: recorder}
}

// Restore loads a previously persisted profile, if any. A missing record is
// not an error; any other storage failure is surfaced.
func (s *Service) Restore(ctx context.Context) (users.Profile, bool, error) {
	profile, err := s.store.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return users.Profile{}, false, nil
		}
		return users.Profile{}, false, fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()
	return profile, true, nil
}

// Current returns the active profile.
func (s *Service) Current() (users.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return users.Profile{}, false
	}
	return *s.profile, true
}

// Role returns the active role, defaulting to viewer when signed out.
func (s *Service) Role() users.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return users.RoleViewer
	}
	return s.profile.Role
}

// Establish installs a profile as the current session and persists it.
func (s *Service) Establish(ctx context.Context, profile users.Profile) error {
	s.mu.Lock()
	p := profile
	s.profile = &p
	s.mu.Unlock()

	s.persist(ctx, profile)
	return nil
}

// ProfileEdits carries the self-editable profile fields. Empty fields are
// left unchanged. Role and status are intentionally absent.
type ProfileEdits struct {
	Name       string
	Email      string
	AvatarURL  string
	DistrictID string
	VillageID  string
	Area       string
}

// UpdateProfile applies self-edits to the current profile and persists it.
func (s *Service) UpdateProfile(ctx context.Context, edits ProfileEdits) (users.Profile, error) {
	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return users.Profile{}, ErrNoSession
	}
	if edits.Name != "" {
		s.profile.Name = edits.Name
	}
	if edits.Email != "" {
		s.profile.Email = edits.Email
	}
	if edits.AvatarURL != "" {
		s.profile.AvatarURL = edits.AvatarURL
	}
	if edits.DistrictID != "" {
		s.profile.DistrictID = edits.DistrictID
	}
	if edits.VillageID != "" {
		s.profile.VillageID = edits.VillageID
	}
	if edits.Area != "" {
		s.profile.Area = edits.Area
	}
	updated := *s.profile
	s.mu.Unlock()

	s.persist(ctx, updated)
	return updated, nil
}

// AssignRole changes the current user's role. Promotion to organizer puts
// the account back behind approval; demotion to viewer approves it.
func (s *Service) AssignRole(ctx context.Context, role users.Role) (users.Profile, error) {
	if !role.Valid() {
		return users.Profile{}, ErrInvalidRole
	}

	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return users.Profile{}, ErrNoSession
	}
	if s.profile.Role != role {
		s.profile.Role = role
		s.profile.Status = users.DefaultStatusFor(role)
	}
	updated := *s.profile
	s.mu.Unlock()

	s.persist(ctx, updated)
	return updated, nil
}

// Approve marks a pending account approved.
func (s *Service) Approve(ctx context.Context) (users.Profile, error) {
	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return users.Profile{}, ErrNoSession
	}
	s.profile.Status = users.StatusApproved
	updated := *s.profile
	s.mu.Unlock()

	s.persist(ctx, updated)
	return updated, nil
}

// Clear signs the user out: the profile is dropped and the session record
// removed.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.profile = nil
	s.mu.Unlock()

	if err := s.store.DeleteSession(ctx); err != nil {
		s.recorder.RecordPersistFailure(storage.SessionRecord)
		logging.Warn(s.logger, "session record delete failed",
			slog.String(logging.FieldRecord, storage.SessionRecord), "error", err)
	}
}

// persist mirrors the profile to the session record. Failures are
// recoverable: the in-memory profile stays authoritative for the session.
func (s *Service) persist(ctx context.Context, profile users.Profile) {
	if err := s.store.SaveSession(ctx, profile); err != nil {
		s.recorder.RecordPersistFailure(storage.SessionRecord)
		logging.Warn(s.logger, "session record write failed",
			slog.String(logging.FieldRecord, storage.SessionRecord), "error", err)
	}
}

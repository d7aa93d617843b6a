// Package registry is the authoritative in-memory game collection. All
// mutations are role-gated to organizers, validated against the game
// lifecycle, applied in memory first, and then mirrored to the durable
// games record. A failed mirror never rolls back the in-memory state.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/notifications"
	"leaguehub/internal/domain/users"
	"leaguehub/internal/logging"
	"leaguehub/internal/metrics"
	"leaguehub/internal/storage"
)

var (
	// ErrUnauthorized indicates a mutation attempted by a non-organizer.
	ErrUnauthorized = errors.New("operation requires organizer role")
	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")
	// ErrInvalidSide indicates an unknown score side.
	ErrInvalidSide = errors.New("invalid side")
)

// Mutation operation labels for metrics.
const (
	opCreateGame  = "create_game"
	opSetStatus   = "set_status"
	opUpdateScore = "update_score"
)

const defaultVenue = "TBD"

// RoleSource reports the caller's current role.
type RoleSource interface {
	Role() users.Role
}

// Feed receives lifecycle notifications.
type Feed interface {
	Add(title, message string, typ notifications.Type) notifications.Notification
}

// Service owns the game collection.
type Service struct {
	mu   sync.RWMutex
	list []games.Game

	store    storage.Store
	roles    RoleSource
	feed     Feed
	logger   *slog.Logger
	recorder *metrics.Recorder

	now   func() time.Time
	newID func() string
}

// NewService constructs an empty registry.
func NewService(store storage.Store, roles RoleSource, feed Feed, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:    store,
		roles:    roles,
		feed:     feed,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Restore loads the games record, or installs and persists the fallback
// collection when the record has never been written. Any other storage
// failure is surfaced.
func (s *Service) Restore(ctx context.Context, fallback []games.Game) error {
	list, err := s.store.LoadGames(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("restore games: %w", err)
		}
		list = fallback
		logging.Info(s.logger, "games record empty, seeding",
			slog.Int(logging.FieldCount, len(list)))
	}

	s.mu.Lock()
	s.list = make([]games.Game, len(list))
	copy(s.list, list)
	s.mu.Unlock()

	if errors.Is(err, storage.ErrNotFound) {
		s.persist(ctx)
	}
	return nil
}

// NewGame carries the organizer-supplied fields for a new game.
type NewGame struct {
	HomeTeam      games.Team
	AwayTeam      games.Team
	ScheduledTime string
	Sport         string
	Venue         string
	ImageURL      string
}

// CreateGame appends a new upcoming game with zeroed scores.
func (s *Service) CreateGame(ctx context.Context, in NewGame) (games.Game, error) {
	if err := s.requireOrganizer(opCreateGame); err != nil {
		return games.Game{}, err
	}

	g := games.Game{
		ID:            s.newID(),
		HomeTeam:      in.HomeTeam,
		AwayTeam:      in.AwayTeam,
		HomeScore:     0,
		AwayScore:     0,
		Status:        games.StatusUpcoming,
		ScheduledTime: in.ScheduledTime,
		Sport:         in.Sport,
		Venue:         in.Venue,
		ImageURL:      in.ImageURL,
	}
	if g.Venue == "" {
		g.Venue = defaultVenue
	}
	if g.ImageURL == "" {
		g.ImageURL = games.DefaultImageURL(g.Sport)
	}

	s.mu.Lock()
	s.list = append(s.list, g)
	s.mu.Unlock()

	s.recorder.RecordMutation(opCreateGame, nil)
	logging.Info(s.logger, "game created",
		slog.String(logging.FieldGameID, g.ID), slog.String("sport", g.Sport))
	s.persist(ctx)
	return g, nil
}

// SetStatus advances a game's lifecycle. Only forward moves are allowed;
// entering LIVE announces the game on the feed.
func (s *Service) SetStatus(ctx context.Context, id string, next games.GameStatus) (games.Game, error) {
	if err := s.requireOrganizer(opSetStatus); err != nil {
		return games.Game{}, err
	}
	if !next.Valid() {
		s.recorder.RecordMutation(opSetStatus, games.ErrInvalidTransition)
		return games.Game{}, games.ErrInvalidTransition
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.recorder.RecordMutation(opSetStatus, ErrGameNotFound)
		return games.Game{}, ErrGameNotFound
	}
	if !s.list[i].Status.CanTransitionTo(next) {
		from := s.list[i].Status
		s.mu.Unlock()
		s.recorder.RecordMutation(opSetStatus, games.ErrInvalidTransition)
		logging.Warn(s.logger, "game status transition rejected",
			slog.String(logging.FieldGameID, id),
			slog.String("from", string(from)), slog.String("to", string(next)))
		return games.Game{}, games.ErrInvalidTransition
	}
	s.list[i].Status = next
	updated := s.list[i]
	s.mu.Unlock()

	s.recorder.RecordMutation(opSetStatus, nil)
	logging.Info(s.logger, "game status changed",
		slog.String(logging.FieldGameID, id), slog.String("status", string(next)))

	if next == games.StatusLive && s.feed != nil {
		s.feed.Add("Game Started",
			fmt.Sprintf("%s vs %s is now live!", updated.HomeTeam.Name, updated.AwayTeam.Name),
			notifications.TypeInfo)
	}

	s.persist(ctx)
	return updated, nil
}

// UpdateScore applies a signed delta to one side's score, floored at zero.
func (s *Service) UpdateScore(ctx context.Context, id string, side games.Side, delta int) (games.Game, error) {
	if err := s.requireOrganizer(opUpdateScore); err != nil {
		return games.Game{}, err
	}
	if !side.Valid() {
		s.recorder.RecordMutation(opUpdateScore, ErrInvalidSide)
		return games.Game{}, ErrInvalidSide
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.recorder.RecordMutation(opUpdateScore, ErrGameNotFound)
		return games.Game{}, ErrGameNotFound
	}
	if side == games.SideHome {
		s.list[i].HomeScore = games.ClampScore(s.list[i].HomeScore, delta)
	} else {
		s.list[i].AwayScore = games.ClampScore(s.list[i].AwayScore, delta)
	}
	updated := s.list[i]
	s.mu.Unlock()

	s.recorder.RecordMutation(opUpdateScore, nil)
	s.persist(ctx)
	return updated, nil
}

// List returns the collection in registry order.
func (s *Service) List() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]games.Game, len(s.list))
	copy(out, s.list)
	return out
}

// Get returns one game by id.
func (s *Service) Get(id string) (games.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.list[i], nil
	}
	return games.Game{}, ErrGameNotFound
}

// Live returns the games currently in play, in registry order.
func (s *Service) Live() []games.Game {
	return games.Live(s.List())
}

// OnDay returns the games scheduled on the same local day as now.
func (s *Service) OnDay(now time.Time, loc *time.Location) []games.Game {
	return games.OnDay(s.List(), now, loc)
}

// Sorted returns the collection ordered by scheduled time.
func (s *Service) Sorted() []games.Game {
	return games.SortBySchedule(s.List())
}

// Counts summarizes the collection for the dashboard.
func (s *Service) Counts() games.Counts {
	return games.Count(s.List())
}

func (s *Service) requireOrganizer(op string) error {
	if s.roles != nil && s.roles.Role() == users.RoleOrganizer {
		return nil
	}
	s.recorder.RecordMutation(op, ErrUnauthorized)
	logging.Warn(s.logger, "mutation rejected", slog.String("op", op),
		slog.String(logging.FieldRole, string(s.currentRole())))
	return ErrUnauthorized
}

func (s *Service) currentRole() users.Role {
	if s.roles == nil {
		return users.RoleViewer
	}
	return s.roles.Role()
}

// indexLocked finds a game by id; callers hold the lock.
func (s *Service) indexLocked(id string) int {
	for i := range s.list {
		if s.list[i].ID == id {
			return i
		}
	}
	return -1
}

// persist mirrors the collection to the games record. Failures are
// recoverable: the in-memory collection stays authoritative.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.SaveGames(ctx, s.List()); err != nil {
		s.recorder.RecordPersistFailure(storage.GamesRecord)
		logging.Warn(s.logger, "games record write failed",
			slog.String(logging.FieldRecord, storage.GamesRecord), "error", err)
	}
}

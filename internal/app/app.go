// Package app is the facade the host UI talks to. It wires the onboarding
// flow, session, game registry, notification feed, and location catalog
// together, tracks the selected screen, and resolves the active view.
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"leaguehub/internal/app/authflow"
	"leaguehub/internal/app/catalog"
	"leaguehub/internal/app/feed"
	"leaguehub/internal/app/registry"
	"leaguehub/internal/app/session"
	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/notifications"
	"leaguehub/internal/logging"
	"leaguehub/internal/metrics"
	"leaguehub/internal/seed"
	"leaguehub/internal/storage"
	"leaguehub/internal/view"
)

// App binds the services behind one surface.
type App struct {
	Flow     *authflow.Flow
	Sessions *session.Service
	Registry *registry.Service
	Feed     *feed.Service
	Catalog  *catalog.Service

	// SeedOnEmpty controls whether an absent games record is populated with
	// the starter collection during Bootstrap. On by default.
	SeedOnEmpty bool

	mu     sync.RWMutex
	screen view.Screen

	logger *slog.Logger
	now    func() time.Time
	loc    *time.Location
}

// New wires an App over a record store.
func New(store storage.Store, logger *slog.Logger, recorder *metrics.Recorder) *App {
	sessions := session.NewService(store, logger, recorder)
	cat := catalog.NewService()
	notif := feed.NewService(recorder)
	reg := registry.NewService(store, sessions, notif, logger, recorder)
	flow := authflow.New(sessions, cat, logger, recorder)

	return &App{
		Flow:        flow,
		Sessions:    sessions,
		Registry:    reg,
		Feed:        notif,
		Catalog:     cat,
		SeedOnEmpty: true,
		screen:      view.ScreenHome,
		logger:      logger,
		now:         time.Now,
		loc:         time.Local,
	}
}

// Bootstrap restores persisted state and seeds what is missing: the session
// short-circuits the onboarding flow when present, the games record seeds
// the starter collection when absent, and the feed starts with the launch
// entries.
func (a *App) Bootstrap(ctx context.Context) error {
	restored, err := a.Flow.Restore(ctx)
	if err != nil {
		return err
	}
	var fallback []games.Game
	if a.SeedOnEmpty {
		fallback = seed.Games(a.now())
	}
	if err := a.Registry.Restore(ctx, fallback); err != nil {
		return err
	}
	a.Feed.Seed(seed.Notifications(a.now()))

	logging.Info(a.logger, "app bootstrapped",
		slog.Bool("session_restored", restored),
		slog.Int(logging.FieldCount, len(a.Registry.List())))
	return nil
}

// Navigate selects a main-app screen. Unknown screens are recorded as-is;
// resolution degrades them to home at render time.
func (a *App) Navigate(screen view.Screen) {
	a.mu.Lock()
	a.screen = screen
	a.mu.Unlock()
	logging.Info(a.logger, "screen selected", slog.String(logging.FieldScreen, string(screen)))
}

// Screen returns the selected screen.
func (a *App) Screen() view.Screen {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.screen
}

// ActiveView resolves the view for the current state.
func (a *App) ActiveView() view.View {
	profile, has := a.Sessions.Current()
	return view.Resolve(view.State{
		Step:          a.Flow.Step(),
		Profile:       profile,
		HasProfile:    has,
		Screen:        a.Screen(),
		Games:         a.Registry.List(),
		Notifications: a.Feed.List(),
		Now:           a.now(),
		Location:      a.loc,
	})
}

// NavItems returns the navigation for the current role.
func (a *App) NavItems() []view.Screen {
	return view.NavItems(a.Sessions.Role())
}

// RequestJoinLeague files a join request with a league organizer. Only the
// submitted name is applied to the profile; the email and team ride along
// for the feed entry, and nothing is sent anywhere in this deployment.
func (a *App) RequestJoinLeague(ctx context.Context, name, email, team string) error {
	if _, err := a.Sessions.UpdateProfile(ctx, session.ProfileEdits{Name: name}); err != nil {
		return err
	}
	a.Feed.Add("Registration Pending",
		"Request to join "+team+" sent to organizer.",
		notifications.TypeSuccess)
	return nil
}

// Logout delegates to the flow and returns the selection to home so the
// next sign-in starts fresh.
func (a *App) Logout(ctx context.Context) error {
	if err := a.Flow.Logout(ctx); err != nil {
		return err
	}
	a.Navigate(view.ScreenHome)
	return nil
}

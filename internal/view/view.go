// Package view resolves what the client should be showing from the current
// auth step, profile, and selected screen. Resolution is pure: it reads
// state and produces a view model without mutating anything, so an
// out-of-role screen selection degrades at render time instead of erroring.
package view

import (
	"time"

	"leaguehub/internal/app/authflow"
	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/notifications"
	"leaguehub/internal/domain/users"
)

// Screen is a main-app destination.
type Screen string

const (
	ScreenHome      Screen = "HOME"
	ScreenLeagues   Screen = "LEAGUES"
	ScreenLive      Screen = "LIVE"
	ScreenDashboard Screen = "DASHBOARD"
	ScreenProfile   Screen = "PROFILE"
)

// Valid reports whether the screen is a known destination.
func (s Screen) Valid() bool {
	switch s {
	case ScreenHome, ScreenLeagues, ScreenLive, ScreenDashboard, ScreenProfile:
		return true
	}
	return false
}

// Kind identifies which view model a resolution produced.
type Kind string

const (
	KindSplash          Kind = "splash"
	KindLogin           Kind = "login"
	KindRegister        Kind = "register"
	KindLocation        Kind = "location"
	KindOTP             Kind = "otp"
	KindPendingApproval Kind = "pending_approval"
	KindHome            Kind = "home"
	KindLeagues         Kind = "leagues"
	KindLive            Kind = "live"
	KindDashboard       Kind = "dashboard"
	KindProfile         Kind = "profile"
)

// State is everything resolution reads.
type State struct {
	Step          authflow.Step
	Profile       users.Profile
	HasProfile    bool
	Screen        Screen
	Games         []games.Game
	Notifications []notifications.Notification
	Now           time.Time
	Location      *time.Location
}

// Home is the landing screen model.
type Home struct {
	TodaysGames []games.Game
	LiveCount   int
	Unread      int
}

// Leagues lists every game ordered by schedule.
type Leagues struct {
	Games []games.Game
}

// Live lists the games currently in play.
type Live struct {
	Games []games.Game
}

// Dashboard is the organizer management screen model.
type Dashboard struct {
	Counts games.Counts
	Games  []games.Game
}

// Profile is the account screen model.
type Profile struct {
	User users.Profile
}

// View is a resolved screen: its kind plus whichever model matches.
type View struct {
	Kind      Kind
	Home      *Home
	Leagues   *Leagues
	Live      *Live
	Dashboard *Dashboard
	Profile   *Profile
}

// Resolve maps the current state to a view. Outside the app the auth step
// decides; inside, a pending organizer is held at the approval screen, an
// unknown or out-of-role screen falls back to home, and otherwise the
// selected screen renders.
func Resolve(s State) View {
	switch s.Step {
	case authflow.StepSplash:
		return View{Kind: KindSplash}
	case authflow.StepLogin:
		return View{Kind: KindLogin}
	case authflow.StepRegister:
		return View{Kind: KindRegister}
	case authflow.StepLocation:
		return View{Kind: KindLocation}
	case authflow.StepOTP:
		return View{Kind: KindOTP}
	}

	if s.HasProfile && s.Profile.PendingOrganizer() {
		return View{Kind: KindPendingApproval}
	}

	screen := s.Screen
	if !screen.Valid() {
		screen = ScreenHome
	}
	if screen == ScreenDashboard && s.Profile.Role != users.RoleOrganizer {
		screen = ScreenHome
	}

	switch screen {
	case ScreenLeagues:
		return View{Kind: KindLeagues, Leagues: &Leagues{Games: games.SortBySchedule(s.Games)}}
	case ScreenLive:
		return View{Kind: KindLive, Live: &Live{Games: games.Live(s.Games)}}
	case ScreenDashboard:
		return View{Kind: KindDashboard, Dashboard: &Dashboard{
			Counts: games.Count(s.Games),
			Games:  games.SortBySchedule(s.Games),
		}}
	case ScreenProfile:
		return View{Kind: KindProfile, Profile: &Profile{User: s.Profile}}
	default:
		return View{Kind: KindHome, Home: &Home{
			TodaysGames: games.OnDay(s.Games, s.Now, s.Location),
			LiveCount:   len(games.Live(s.Games)),
			Unread:      unread(s.Notifications),
		}}
	}
}

// NavItems returns the screens a role may navigate to, in display order.
// The dashboard is organizer-only.
func NavItems(role users.Role) []Screen {
	items := []Screen{ScreenHome, ScreenLeagues, ScreenLive}
	if role == users.RoleOrganizer {
		items = append(items, ScreenDashboard)
	}
	return append(items, ScreenProfile)
}

func unread(items []notifications.Notification) int {
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n
}

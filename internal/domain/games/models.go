package games

import "errors"

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	StatusUpcoming GameStatus = "UPCOMING"
	StatusLive     GameStatus = "LIVE"
	StatusFinal    GameStatus = "FINAL"
)

// ErrInvalidTransition indicates a status change that would move a game
// backwards or skip the lifecycle order.
var ErrInvalidTransition = errors.New("invalid game status transition")

// Valid reports whether the status is one of the known lifecycle states.
func (s GameStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusFinal:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may advance to next.
// The lifecycle is strictly forward: UPCOMING -> LIVE -> FINAL.
func (s GameStatus) CanTransitionTo(next GameStatus) bool {
	switch s {
	case StatusUpcoming:
		return next == StatusLive
	case StatusLive:
		return next == StatusFinal
	}
	return false
}

// Team is a named side of a game.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Game is the canonical game shape held by the registry and persisted to
// the games record.
type Game struct {
	ID            string     `json:"id"`
	HomeTeam      Team       `json:"homeTeam"`
	AwayTeam      Team       `json:"awayTeam"`
	HomeScore     int        `json:"homeScore"`
	AwayScore     int        `json:"awayScore"`
	Status        GameStatus `json:"status"`
	ScheduledTime string     `json:"scheduledTime"`
	Sport         string     `json:"sport"`
	Venue         string     `json:"venue,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
}

// Side identifies which team's score a mutation targets.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Valid reports whether the side is home or away.
func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

// ClampScore applies a delta to a score, flooring the result at zero.
func ClampScore(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

package games

import (
	"sort"
	"time"

	"leaguehub/internal/timeutil"
)

// Live returns the games currently in play, preserving input order.
func Live(list []Game) []Game {
	var out []Game
	for _, g := range list {
		if g.Status == StatusLive {
			out = append(out, g)
		}
	}
	return out
}

// OnDay returns the games scheduled on the same calendar day as now in the
// given location. Games with unparsable schedules are skipped.
func OnDay(list []Game, now time.Time, loc *time.Location) []Game {
	var out []Game
	for _, g := range list {
		at, err := timeutil.ParseInstant(g.ScheduledTime)
		if err != nil {
			continue
		}
		if timeutil.SameLocalDay(at, now, loc) {
			out = append(out, g)
		}
	}
	return out
}

// SortBySchedule returns a copy sorted ascending by scheduled time. Equal
// times keep their relative order; unparsable schedules sort last.
func SortBySchedule(list []Game) []Game {
	out := make([]Game, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		ti, errI := timeutil.ParseInstant(out[i].ScheduledTime)
		tj, errJ := timeutil.ParseInstant(out[j].ScheduledTime)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return ti.Before(tj)
	})
	return out
}

// Counts summarizes the collection for the organizer dashboard.
type Counts struct {
	Total     int
	Live      int
	Completed int
}

// Count tallies the collection by lifecycle state.
func Count(list []Game) Counts {
	c := Counts{Total: len(list)}
	for _, g := range list {
		switch g.Status {
		case StatusLive:
			c.Live++
		case StatusFinal:
			c.Completed++
		}
	}
	return c
}

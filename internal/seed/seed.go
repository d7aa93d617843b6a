// Package seed supplies the deterministic bootstrap data used when the
// durable records are empty: four example games spanning every lifecycle
// state, and the launch notifications.
package seed

import (
	"time"

	"leaguehub/internal/domain/games"
	"leaguehub/internal/domain/notifications"
)

// Games returns the fixed starter collection, scheduled relative to now so
// one game is always upcoming, one live, and two final.
func Games(now time.Time) []games.Game {
	return []games.Game{
		{
			ID:            "g1",
			HomeTeam:      games.Team{ID: "t1", Name: "Thunderbolts", Color: "blue"},
			AwayTeam:      games.Team{ID: "t2", Name: "Crimson Tide", Color: "red"},
			HomeScore:     0,
			AwayScore:     0,
			Status:        games.StatusUpcoming,
			ScheduledTime: now.Add(time.Hour).Format(time.RFC3339),
			Sport:         "Basketball",
			Venue:         "Nehru Stadium, Chennai",
			ImageURL:      games.DefaultImageURL("Basketball"),
		},
		{
			ID:            "g2",
			HomeTeam:      games.Team{ID: "t3", Name: "Emerald Eagles", Color: "green"},
			AwayTeam:      games.Team{ID: "t4", Name: "Golden Hawks", Color: "yellow"},
			HomeScore:     12,
			AwayScore:     8,
			Status:        games.StatusLive,
			ScheduledTime: now.Add(-30 * time.Minute).Format(time.RFC3339),
			Sport:         "Soccer",
			Venue:         "District Sports Complex, Salem",
			ImageURL:      games.DefaultImageURL("Soccer"),
		},
		{
			ID:            "g3",
			HomeTeam:      games.Team{ID: "t5", Name: "Silver Sharks", Color: "gray"},
			AwayTeam:      games.Team{ID: "t6", Name: "Iron Giants", Color: "orange"},
			HomeScore:     24,
			AwayScore:     21,
			Status:        games.StatusFinal,
			ScheduledTime: now.Add(-24 * time.Hour).Format(time.RFC3339),
			Sport:         "Football",
			Venue:         "Anna Stadium, Trichy",
			ImageURL:      games.DefaultImageURL("Football"),
		},
		{
			ID:            "g4",
			HomeTeam:      games.Team{ID: "t1", Name: "Thunderbolts", Color: "blue"},
			AwayTeam:      games.Team{ID: "t3", Name: "Emerald Eagles", Color: "green"},
			HomeScore:     45,
			AwayScore:     42,
			Status:        games.StatusFinal,
			ScheduledTime: now.Add(-48 * time.Hour).Format(time.RFC3339),
			Sport:         "Basketball",
			Venue:         "Race Course Ground, Madurai",
			ImageURL:      games.DefaultImageURL("Basketball"),
		},
	}
}

// Notifications returns the launch feed entries, newest first.
func Notifications(now time.Time) []notifications.Notification {
	return []notifications.Notification{
		{
			ID:        "n1",
			Title:     "Game Started",
			Message:   "Emerald Eagles vs Golden Hawks is now LIVE!",
			Type:      notifications.TypeInfo,
			CreatedAt: now.Add(-30 * time.Minute),
			Read:      false,
		},
		{
			ID:        "n2",
			Title:     "Registration Approved",
			Message:   "Your request to join the Summer League has been approved.",
			Type:      notifications.TypeSuccess,
			CreatedAt: now.Add(-2 * time.Hour),
			Read:      true,
		},
	}
}

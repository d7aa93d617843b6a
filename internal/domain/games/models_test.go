package games

import "testing"

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to GameStatus
		want     bool
	}{
		{StatusUpcoming, StatusLive, true},
		{StatusLive, StatusFinal, true},
		{StatusUpcoming, StatusFinal, false},
		{StatusLive, StatusUpcoming, false},
		{StatusFinal, StatusLive, false},
		{StatusFinal, StatusUpcoming, false},
		{StatusUpcoming, StatusUpcoming, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	if !StatusLive.Valid() {
		t.Fatalf("expected LIVE to be valid")
	}
	if GameStatus("PAUSED").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestClampScoreFloorsAtZero(t *testing.T) {
	if got := ClampScore(0, -1); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampScore(3, -10); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampScore(3, 2); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestDefaultImageURL(t *testing.T) {
	if got := DefaultImageURL("Basketball"); got != sportImages["Basketball"] {
		t.Fatalf("unexpected basketball image %s", got)
	}
	if got := DefaultImageURL("Curling"); got != fallbackImage {
		t.Fatalf("expected fallback image, got %s", got)
	}
}

func TestSideValid(t *testing.T) {
	if !SideHome.Valid() || !SideAway.Valid() {
		t.Fatalf("expected home/away to be valid sides")
	}
	if Side("neutral").Valid() {
		t.Fatalf("expected unknown side to be invalid")
	}
}

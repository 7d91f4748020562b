package domain

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusReady, StatusCompleted, true},

		// запрещённые переходы
		{StatusPending, StatusReady, false},
		{StatusPending, StatusCompleted, false},
		{StatusReady, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPreparing, false},
		{StatusCompleted, StatusCancelled, false},
		{"unknown", StatusPreparing, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	if !IsTerminalStatus(StatusCompleted) || !IsTerminalStatus(StatusCancelled) {
		t.Fatalf("completed and cancelled must be terminal")
	}
	if IsTerminalStatus(StatusPending) || IsTerminalStatus(StatusPreparing) || IsTerminalStatus(StatusReady) {
		t.Fatalf("active statuses must not be terminal")
	}
}

func TestKnownStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		if !KnownStatus(s) {
			t.Fatalf("status %q must be known", s)
		}
	}
	if KnownStatus("shipped") {
		t.Fatalf("unexpected status must not be known")
	}
}

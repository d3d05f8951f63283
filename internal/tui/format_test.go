package tui

import (
	"testing"

	"pomodial/internal/session"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		expect  string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{3661, "61:01"},
		{-5, "00:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.seconds); got != c.expect {
			t.Fatalf("FormatClock(%d) = %q, want %q", c.seconds, got, c.expect)
		}
	}
}

func TestFormatStatus(t *testing.T) {
	if got := FormatStatus(session.ModeFocus, session.StatusRunning); got != "Focus running" {
		t.Fatalf("unexpected status line %q", got)
	}
	if got := FormatStatus(session.ModeBreak, session.StatusIdle); got != "Break ready" {
		t.Fatalf("unexpected status line %q", got)
	}
	if got := FormatStatus(session.ModeFocus, session.StatusAlarm); got != "Focus finished" {
		t.Fatalf("unexpected status line %q", got)
	}
}

func TestWindowTitle(t *testing.T) {
	if got := windowTitle(session.ModeFocus, session.StatusIdle, 1500, false); got != "pomodial" {
		t.Fatalf("idle title should be the app name, got %q", got)
	}
	if got := windowTitle(session.ModeFocus, session.StatusRunning, 1499, false); got != "24:59 – Focus running" {
		t.Fatalf("unexpected running title %q", got)
	}
	if got := windowTitle(session.ModeBreak, session.StatusPaused, 300, true); got != "05:00 – adjusting Break" {
		t.Fatalf("unexpected adjusting title %q", got)
	}
}

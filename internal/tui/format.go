package tui

import (
	"fmt"

	"pomodial/internal/session"
)

// FormatClock renders a second count as MM:SS. Sessions over an hour
// spill into the minute field, matching a countdown display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatStatus returns the human-readable status line.
func FormatStatus(mode session.Mode, status session.Status) string {
	switch status {
	case session.StatusRunning:
		return fmt.Sprintf("%s running", mode)
	case session.StatusPaused:
		return fmt.Sprintf("%s paused", mode)
	case session.StatusAlarm:
		return fmt.Sprintf("%s finished", mode)
	default:
		return fmt.Sprintf("%s ready", mode)
	}
}

// windowTitle mirrors the countdown into the terminal title while a
// session is active or the duration modal is open.
func windowTitle(mode session.Mode, status session.Status, remaining int, adjusting bool) string {
	if adjusting {
		return fmt.Sprintf("%s – adjusting %s", FormatClock(remaining), mode)
	}
	if status == session.StatusIdle {
		return "pomodial"
	}
	return fmt.Sprintf("%s – %s", FormatClock(remaining), FormatStatus(mode, status))
}

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pomodial/internal/config"
	"pomodial/internal/session"
)

// ErrInvalidNumber rejects non-numeric or negative manual entry. It
// applies even in unrestricted mode.
var ErrInvalidNumber = errors.New("enter a non-negative whole number")

// BoundsError rejects manual entry outside the mode's minute range.
type BoundsError struct {
	Mode session.Mode
	Min  int
	Max  int
	Val  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d minutes (got %d)", e.Mode, e.Min, e.Max, e.Val)
}

// MinuteBounds returns the manual-entry range for a mode.
func MinuteBounds(mode session.Mode) (min, max int) {
	if mode == session.ModeBreak {
		return config.BreakMinMinutes, config.BreakMaxMinutes
	}
	return config.FocusMinMinutes, config.FocusMaxMinutes
}

// ParseMinutes validates raw manual entry for a mode. With unrestricted
// set, bounds checking is skipped and any non-negative integer passes,
// including zero. The state machine is never reached with invalid data.
func ParseMinutes(raw string, mode session.Mode, unrestricted bool) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidNumber
	}
	if unrestricted {
		return n, nil
	}
	min, max := MinuteBounds(mode)
	if n < min || n > max {
		return 0, &BoundsError{Mode: mode, Min: min, Max: max, Val: n}
	}
	return n, nil
}

package config

import "time"

// Factory default session durations.
const (
	FocusDefault = 25 * time.Minute
	BreakDefault = 5 * time.Minute
)

// Manual-entry bounds, in minutes. Bypassed in unrestricted input mode.
const (
	FocusMinMinutes = 5
	FocusMaxMinutes = 60
	BreakMinMinutes = 1
	BreakMaxMinutes = 30
)

// Database/application settings.
const (
	AppName    = "pomodial"
	DBFileName = "pomodial.db"
)

// UnrestrictedPresses is how many times the unlock key must be pressed
// within a single modal session to disable bounds checking.
const UnrestrictedPresses = 6

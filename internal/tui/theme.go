package tui

import "github.com/charmbracelet/lipgloss"

// Theme collects the styles for one color scheme. Focus and Break carry
// distinct accents so the screen reflects mode and activity at a glance.
type Theme struct {
	Name        string
	Base        lipgloss.Style
	Header      lipgloss.Style
	Clock       lipgloss.Style
	ClockPaused lipgloss.Style
	FocusAccent lipgloss.Style
	BreakAccent lipgloss.Style
	Alarm       lipgloss.Style
	Dim         lipgloss.Style
	Error       lipgloss.Style
	Input       lipgloss.Style
	DialRim     lipgloss.Style
	DialFilled  lipgloss.Style
	DialHandle  lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ClockPaused: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		FocusAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		BreakAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Alarm:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Blink(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		DialRim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		DialFilled:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		DialHandle:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	},
	"dracula": {
		Name:        "Dracula",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Clock:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		ClockPaused: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Bold(true),
		FocusAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		BreakAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Alarm:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Blink(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		DialRim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		DialFilled:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		DialHandle:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	},
}

// ThemeOrder fixes the cycling order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// ModeAccent picks the accent style for a mode from the active theme.
func ModeAccent(isBreak bool) lipgloss.Style {
	if isBreak {
		return CurrentTheme.BreakAccent
	}
	return CurrentTheme.FocusAccent
}

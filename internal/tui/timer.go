package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"pomodial/internal/session"
)

// --- Messages ---

// TickMsg drives the countdown. The sequence number invalidates ticks
// scheduled before a pause or reset, so at most one driver chain is
// ever live.
type TickMsg struct {
	seq int
	at  time.Time
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg{seq: seq, at: t} })
}

// --- Model ---

// TimerModel is the root bubbletea model: the countdown face, the
// statistics footer and the duration modal overlay.
type TimerModel struct {
	machine    *session.Machine
	kv         session.KV
	reportsDir string

	progress progress.Model
	modal    *durationModal
	tickSeq  int

	Message   string
	lastTitle string
	width     int
	height    int
}

func NewTimerModel(machine *session.Machine, kv session.KV, reportsDir string) TimerModel {
	m := TimerModel{
		machine:    machine,
		kv:         kv,
		reportsDir: reportsDir,
		progress:   progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = 30
	if theme, ok := kv.Get("theme"); ok {
		SetTheme(theme)
	}
	return m
}

func (m TimerModel) Init() tea.Cmd {
	return m.titleCmd()
}

// titleCmd mirrors the countdown into the terminal title, emitting a
// command only when the title actually changed.
func (m *TimerModel) titleCmd() tea.Cmd {
	title := windowTitle(m.machine.Mode(), m.machine.Status(), m.machine.Remaining(), m.modal != nil)
	if title == m.lastTitle {
		return nil
	}
	m.lastTitle = title
	return tea.SetWindowTitle(title)
}

// startTicking invalidates any in-flight tick and schedules a fresh
// driver. Call only on a transition into Running.
func (m *TimerModel) startTicking() tea.Cmd {
	m.tickSeq++
	return tickCmd(m.tickSeq)
}

// stopTicking invalidates any in-flight tick without scheduling a new
// one. Call on any transition away from Running.
func (m *TimerModel) stopTicking() {
	m.tickSeq++
}

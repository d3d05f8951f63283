// Package session owns the canonical timer state and every transition:
// start/pause/resume, ticking, completion bookkeeping, mode switching
// and statistics. All mutations happen on the event loop goroutine; the
// machine performs no locking and no input validation of its own.
package session

import (
	"strconv"
	"time"

	"pomodial/internal/config"
	"pomodial/internal/util"
)

// Mode selects which duration bounds and statistics bucket apply.
type Mode int

const (
	ModeFocus Mode = iota
	ModeBreak
)

func (m Mode) String() string {
	if m == ModeBreak {
		return "Break"
	}
	return "Focus"
}

// Status is the lifecycle state of the current session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusAlarm
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusAlarm:
		return "Alarm"
	default:
		return "Idle"
	}
}

// KV is the persistence capability the machine writes through. Writes
// are per-key and last-write-wins; an absent key means "use default".
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Alerter receives completion side effects. Trigger starts the alarm
// for the just-finished mode; Stop is idempotent.
type Alerter interface {
	Trigger(mode Mode)
	Stop()
}

// Persistence keys.
const (
	keyFocusDuration = "focus_duration"
	keyBreakDuration = "break_duration"
	keySessions      = "sessions_count"
	keyTotalFocus    = "total_focus_time"
	keyTotalBreak    = "total_break_time"
	keyCycleFlag     = "cycle_focus_done"
)

// Machine is the session state machine. Construct with New; read state
// through the accessors; mutate only through the operation methods.
type Machine struct {
	kv    KV
	alert Alerter

	mode      Mode
	status    Status
	duration  int // seconds
	remaining int // seconds, 0 <= remaining <= duration

	sessions   int // completed focus+break cycles
	totalFocus int // minutes
	totalBreak int // minutes
	focusDone  bool
}

// New loads persisted durations and statistics, falling back to the
// factory defaults for anything absent. The countdown always restarts
// from the stored duration; live remaining time is not persisted.
func New(kv KV, alert Alerter) *Machine {
	m := &Machine{kv: kv, alert: alert, mode: ModeFocus, status: StatusIdle}
	m.duration = m.storedDuration(m.mode)
	m.remaining = m.duration
	m.sessions = m.getInt(keySessions, 0)
	m.totalFocus = m.getInt(keyTotalFocus, 0)
	m.totalBreak = m.getInt(keyTotalBreak, 0)
	if v, ok := kv.Get(keyCycleFlag); ok {
		m.focusDone = v == "true"
	}
	return m
}

func (m *Machine) Mode() Mode             { return m.mode }
func (m *Machine) Status() Status         { return m.status }
func (m *Machine) Duration() int          { return m.duration }
func (m *Machine) Remaining() int         { return m.remaining }
func (m *Machine) Sessions() int          { return m.sessions }
func (m *Machine) TotalFocusMinutes() int { return m.totalFocus }
func (m *Machine) TotalBreakMinutes() int { return m.totalBreak }
func (m *Machine) CycleFocusDone() bool   { return m.focusDone }

// Toggle is the primary intent. An alarm is acknowledged by stopping
// the alert and switching to the opposite mode; otherwise it flips
// between running and suspended.
func (m *Machine) Toggle() {
	switch m.status {
	case StatusAlarm:
		m.alert.Stop()
		m.SwitchMode()
	case StatusRunning:
		m.status = StatusPaused
	default:
		m.status = StatusRunning
	}
}

// Tick advances the countdown by one second. Invoked once per second by
// the driver while running; the last second triggers the alarm and the
// completion bookkeeping for the finished mode.
func (m *Machine) Tick() {
	if m.status != StatusRunning {
		return
	}
	if m.remaining > 1 {
		m.remaining--
		return
	}
	m.remaining = 0
	m.status = StatusAlarm
	m.alert.Trigger(m.mode)
	m.complete(m.mode)
}

// complete applies the statistics bookkeeping when a session finishes.
// A cycle is only credited on a break that follows a completed focus.
func (m *Machine) complete(finished Mode) {
	minutes := m.duration / 60
	if finished == ModeFocus {
		m.focusDone = true
		m.totalFocus += minutes
		m.setInt(keyTotalFocus, m.totalFocus)
		m.persistFlag()
		return
	}
	m.totalBreak += minutes
	m.setInt(keyTotalBreak, m.totalBreak)
	if m.focusDone {
		m.sessions++
		m.focusDone = false
		m.setInt(keySessions, m.sessions)
		m.persistFlag()
	}
}

// SwitchMode flips focus/break and loads that mode's stored duration.
func (m *Machine) SwitchMode() {
	if m.mode == ModeFocus {
		m.mode = ModeBreak
	} else {
		m.mode = ModeFocus
	}
	m.duration = m.storedDuration(m.mode)
	m.remaining = m.duration
	m.status = StatusIdle
}

// Skip abandons the current session and its cycle credit.
func (m *Machine) Skip() {
	m.focusDone = false
	m.persistFlag()
	m.SwitchMode()
}

// Reset returns to idle. With restoreFactory (the duration modal is
// open) the mode's factory default duration replaces any stored
// customization; otherwise the configured duration is kept and only the
// countdown is rewound.
func (m *Machine) Reset(restoreFactory bool) {
	if m.status == StatusAlarm {
		m.alert.Stop()
	}
	if restoreFactory {
		m.duration = int(defaultDuration(m.mode).Seconds())
		m.setInt(durationKey(m.mode), m.duration)
	}
	m.remaining = m.duration
	m.status = StatusIdle
	m.focusDone = false
	m.persistFlag()
}

// BeginAdjust freezes the countdown while the duration modal is open,
// rewinding the display to the full configured duration.
func (m *Machine) BeginAdjust() {
	m.status = StatusPaused
	m.remaining = m.duration
}

// SetDuration replaces the current mode's duration. Zero minutes is a
// deliberate one-second floor used by the hidden rapid-test mode.
// Bounds are the caller's responsibility.
func (m *Machine) SetDuration(minutes int) {
	if minutes == 0 {
		m.duration = 1
	} else {
		m.duration = minutes * 60
	}
	m.setInt(durationKey(m.mode), m.duration)
	m.remaining = m.duration
	m.status = StatusIdle
	m.focusDone = false
	m.persistFlag()
}

// ClearStats zeroes all cumulative statistics and persists them. The
// current session (mode, status, durations) is untouched.
func (m *Machine) ClearStats() {
	m.sessions = 0
	m.totalFocus = 0
	m.totalBreak = 0
	m.focusDone = false
	m.setInt(keySessions, 0)
	m.setInt(keyTotalFocus, 0)
	m.setInt(keyTotalBreak, 0)
	m.persistFlag()
}

func durationKey(mode Mode) string {
	if mode == ModeBreak {
		return keyBreakDuration
	}
	return keyFocusDuration
}

func defaultDuration(mode Mode) time.Duration {
	if mode == ModeBreak {
		return config.BreakDefault
	}
	return config.FocusDefault
}

func (m *Machine) storedDuration(mode Mode) int {
	return m.getInt(durationKey(mode), int(defaultDuration(mode).Seconds()))
}

func (m *Machine) getInt(key string, fallback int) int {
	raw, ok := m.kv.Get(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func (m *Machine) setInt(key string, v int) {
	util.LogError("persist "+key, m.kv.Set(key, strconv.Itoa(v)))
}

func (m *Machine) persistFlag() {
	util.LogError("persist "+keyCycleFlag, m.kv.Set(keyCycleFlag, strconv.FormatBool(m.focusDone)))
}

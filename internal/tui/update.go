package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"pomodial/internal/dial"
	"pomodial/internal/session"
	"pomodial/internal/util"
)

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Clear transient messages on keypress
	if m.Message != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Message = ""
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			target := 30
			if m.width < 60 {
				target = m.width / 2
			}
			if target < 10 {
				target = 10
			}
			m.progress.Width = target
		}
		return m, nil

	case TickMsg:
		if msg.seq != m.tickSeq {
			return m, nil
		}
		if m.machine.Status() != session.StatusRunning {
			return m, nil
		}
		m.machine.Tick()
		if m.machine.Status() == session.StatusRunning {
			return m, tea.Batch(tickCmd(m.tickSeq), m.titleCmd())
		}
		// Countdown hit zero; the alarm holds until acknowledged.
		m.stopTicking()
		return m, m.titleCmd()

	case tea.MouseMsg:
		if m.modal != nil {
			return m.handleModalMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal != nil {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case " ", "enter":
		wasRunning := m.machine.Status() == session.StatusRunning
		m.machine.Toggle()
		if m.machine.Status() == session.StatusRunning {
			return m, tea.Batch(m.startTicking(), m.titleCmd())
		}
		if wasRunning {
			m.stopTicking()
		}
		return m, m.titleCmd()

	case "s":
		m.stopTicking()
		if m.machine.Status() == session.StatusAlarm {
			// Skipping out of an alarm acknowledges it first.
			m.machine.Toggle()
		} else {
			m.machine.Skip()
		}
		return m, m.titleCmd()

	case "r":
		m.stopTicking()
		m.machine.Reset(false)
		return m, m.titleCmd()

	case "d":
		if m.machine.Status() == session.StatusAlarm {
			return m, nil
		}
		m.stopTicking()
		m.machine.BeginAdjust()
		m.modal = newDurationModal(m.machine.Mode(), m.machine.Duration()/60)
		return m, m.titleCmd()

	case "x":
		m.machine.ClearStats()
		m.Message = "Statistics cleared."
		return m, nil

	case "t":
		m.cycleTheme()
		return m, nil

	case "e":
		path, err := GeneratePDFReport(m.machine, m.reportsDir)
		if err != nil {
			m.Message = fmt.Sprintf("Report failed: %v", err)
		} else {
			m.Message = fmt.Sprintf("Report written to %s", path)
		}
		return m, nil
	}

	return m, nil
}

func (m TimerModel) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return m, m.titleCmd()

	case "enter":
		minutes, err := m.modal.minutes()
		if err != nil {
			m.modal.errMsg = err.Error()
			return m, nil
		}
		m.machine.SetDuration(minutes)
		m.modal = nil
		m.Message = "Duration updated."
		return m, m.titleCmd()

	case "u":
		m.modal.pressUnlock()
		return m, nil

	case "r":
		// Factory reset for the current mode, persisted immediately.
		m.machine.Reset(true)
		m.modal.setMinutes(m.machine.Duration() / 60)
		return m, m.titleCmd()
	}

	var cmd tea.Cmd
	m.modal.input, cmd = m.modal.input.Update(msg)
	m.modal.errMsg = ""
	return m, cmd
}

func (m TimerModel) handleModalMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cx, cy := m.dialCenter()
	// Columns are roughly half as tall as rows; fold the face back into
	// circle space before measuring.
	fx := float64(msg.X-cx) / 2
	fy := float64(msg.Y - cy)
	inside := math.Hypot(fx, fy) <= dialRadius+1

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.modal.dragging = true
			m.applyDialDrag(fx, fy)
		}
	case tea.MouseActionMotion:
		if m.modal.dragging {
			m.applyDialDrag(fx, fy)
		}
	case tea.MouseActionRelease:
		m.modal.dragging = false
	}
	return m, nil
}

// applyDialDrag maps a pointer offset from the dial center to minutes
// and reflects it into the input. The dial always clamps to the mode's
// bounds; only manual entry honors unrestricted mode.
func (m *TimerModel) applyDialDrag(fx, fy float64) {
	deg := dial.AngleFromPointer(fx, fy, 0, 0)
	min, max := MinuteBounds(m.modal.mode)
	m.modal.setMinutes(dial.MinutesFromAngle(deg, min, max))
}

func (m *TimerModel) cycleTheme() {
	next := ThemeOrder[0]
	for i, name := range ThemeOrder {
		if Themes[name].Name == CurrentTheme.Name {
			next = ThemeOrder[(i+1)%len(ThemeOrder)]
			break
		}
	}
	SetTheme(next)
	util.LogError("persist theme", m.kv.Set("theme", next))
}

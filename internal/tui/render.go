package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"pomodial/internal/dial"
	"pomodial/internal/session"
)

// modalContentHeight is the fixed line count of the modal overlay:
// title, blank, dial, blank, bordered input, blank, bounds line, error
// line, help. The error line renders even when empty so the dial never
// shifts under the pointer mid-drag.
const modalContentHeight = 1 + 1 + (2*dialRadius + 1) + 1 + 3 + 1 + 1 + 1 + 1

func (m TimerModel) View() string {
	if m.width == 0 {
		return "Starting..."
	}
	if m.modal != nil {
		return m.modalView()
	}
	return m.mainView()
}

func (m TimerModel) mainView() string {
	mc := m.machine
	accent := ModeAccent(mc.Mode() == session.ModeBreak)

	header := CurrentTheme.Header.Render("POMODIAL") + "  " + accent.Render(FormatStatus(mc.Mode(), mc.Status()))

	clockStyle := CurrentTheme.Clock
	if mc.Status() == session.StatusPaused {
		clockStyle = CurrentTheme.ClockPaused
	}
	clock := clockStyle.Render(FormatClock(mc.Remaining()))

	var elapsed float64
	if mc.Duration() > 0 {
		elapsed = float64(mc.Duration()-mc.Remaining()) / float64(mc.Duration())
	}
	bar := m.progress.ViewAs(elapsed)

	stats := CurrentTheme.Dim.Render(fmt.Sprintf(
		"Sessions: %d · Focus: %dm · Break: %dm",
		mc.Sessions(), mc.TotalFocusMinutes(), mc.TotalBreakMinutes(),
	))

	lines := []string{header, "", clock, bar, "", stats}

	if mc.Status() == session.StatusAlarm {
		lines = append(lines, CurrentTheme.Alarm.Render(fmt.Sprintf("%s finished! Press space to continue.", mc.Mode())))
	} else if m.Message != "" {
		lines = append(lines, CurrentTheme.Dim.Render(m.Message))
	} else {
		lines = append(lines, "")
	}

	help := "[space]start/pause [s]skip [r]reset [d]duration [x]clear stats [t]theme [e]report [q]quit"
	lines = append(lines, CurrentTheme.Dim.Render(truncate(help, m.width-4)))

	return CurrentTheme.Base.Render(strings.Join(lines, "\n"))
}

func (m TimerModel) modalView() string {
	dm := m.modal
	min, max := MinuteBounds(dm.mode)

	title := CurrentTheme.Header.Render(fmt.Sprintf("Set %s duration", dm.mode))

	minutes, err := dm.minutes()
	face := minutes
	if err != nil || face < 1 || face > 60 {
		face = min
	}
	dialArt := renderDial(face)

	input := CurrentTheme.Input.Render(dm.input.View())

	bounds := fmt.Sprintf("%d–%d minutes", min, max)
	if dm.unrestricted {
		bounds = "unrestricted: any non-negative number"
	}

	errLine := ""
	if dm.errMsg != "" {
		errLine = CurrentTheme.Error.Render(dm.errMsg)
	}

	help := CurrentTheme.Dim.Render("[enter]apply [r]factory default [esc]cancel · drag the dial")

	elems := []string{
		title,
		"",
		dialArt,
		"",
		input,
		"",
		CurrentTheme.Dim.Render(bounds),
		errLine,
		help,
	}
	var lines []string
	for _, e := range elems {
		lines = append(lines, strings.Split(e, "\n")...)
	}

	// Centered by hand so dialCenter stays an exact mirror of the
	// layout; the mouse handler depends on it.
	top := m.modalTop()
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	for i, line := range lines {
		if pad := (m.width - ansi.StringWidth(line)) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m TimerModel) modalTop() int {
	top := (m.height - modalContentHeight) / 2
	if top < 0 {
		top = 0
	}
	return top
}

// dialCenter is the screen cell at the middle of the rendered dial,
// mirroring the modalView layout. The mouse handler folds pointer
// positions around this point.
func (m TimerModel) dialCenter() (int, int) {
	dialWidth := 4*dialRadius + 1
	cx := (m.width-dialWidth)/2 + 2*dialRadius
	cy := m.modalTop() + 2 + dialRadius
	return cx, cy
}

// renderDial draws the clock face: a rim with the arc up to the current
// minute filled, a handle at the minute position and the value in the
// center. Rendered twice as wide as tall to look round in a terminal.
func renderDial(minutes int) string {
	target := dial.AngleFromMinutes(minutes)
	if minutes >= 60 {
		target = 360
	}
	label := fmt.Sprintf("%dm", minutes)
	labelStart := -len(label) / 2

	var b strings.Builder
	for dy := -dialRadius; dy <= dialRadius; dy++ {
		for dx := -2 * dialRadius; dx <= 2*dialRadius; dx++ {
			x := float64(dx) / 2
			y := float64(dy)
			d := math.Hypot(x, y)

			if dy == 0 && dx >= labelStart && dx < labelStart+len(label) {
				if dx == labelStart {
					b.WriteString(CurrentTheme.DialHandle.Render(label))
				}
				continue
			}

			switch {
			case math.Abs(d-dialRadius) <= 0.5:
				deg := dial.AngleFromPointer(x, y, 0, 0)
				if deg <= target {
					b.WriteString(CurrentTheme.DialFilled.Render("●"))
				} else {
					b.WriteString(CurrentTheme.DialRim.Render("·"))
				}
			case d >= 1.5 && d <= dialRadius-0.5 && onHandle(x, y, target):
				b.WriteString(CurrentTheme.DialHandle.Render("█"))
			default:
				b.WriteString(" ")
			}
		}
		if dy < dialRadius {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// onHandle reports whether a face point lies on the minute hand.
func onHandle(x, y, target float64) bool {
	deg := dial.AngleFromPointer(x, y, 0, 0)
	diff := math.Abs(deg - math.Mod(target, 360))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff <= 10
}

func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

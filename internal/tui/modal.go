package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"pomodial/internal/config"
	"pomodial/internal/session"
)

// dialRadius is the clock face radius in rows; the rendered face is
// twice as wide as tall to compensate for cell aspect ratio.
const dialRadius = 6

// durationModal is the duration configuration overlay: a numeric input
// plus a draggable clock dial. The unrestricted unlock counter lives
// here so it dies with the modal session and is never persisted.
type durationModal struct {
	mode         session.Mode
	input        textinput.Model
	errMsg       string
	unlockCount  int
	unrestricted bool
	dragging     bool
}

func newDurationModal(mode session.Mode, currentMinutes int) *durationModal {
	ti := textinput.New()
	ti.Placeholder = "minutes"
	ti.CharLimit = 4
	ti.Width = 10
	ti.SetValue(strconv.Itoa(currentMinutes))
	ti.Focus()
	return &durationModal{mode: mode, input: ti}
}

// pressUnlock counts activations of the hidden toggle. Once the
// threshold is reached bounds checking stays off for this modal only.
func (dm *durationModal) pressUnlock() {
	if dm.unrestricted {
		return
	}
	dm.unlockCount++
	if dm.unlockCount >= config.UnrestrictedPresses {
		dm.unrestricted = true
	}
}

// minutes validates the current input value.
func (dm *durationModal) minutes() (int, error) {
	return ParseMinutes(dm.input.Value(), dm.mode, dm.unrestricted)
}

// setMinutes reflects a dial drag or factory reset into the input.
func (dm *durationModal) setMinutes(m int) {
	dm.errMsg = ""
	dm.input.SetValue(strconv.Itoa(m))
}

// Package alert turns session completions into audible side effects.
// The terminal bell repeats once per second until the alarm is
// acknowledged; the TUI layers its own visual flash on top.
package alert

import (
	"io"
	"os"
	"sync"
	"time"

	"pomodial/internal/session"
)

// Dispatcher rings the terminal bell on a loop. It satisfies
// session.Alerter. Trigger and Stop are safe to call from the event
// loop at any time; Stop is idempotent.
type Dispatcher struct {
	mu      sync.Mutex
	out     io.Writer
	stopCh  chan struct{}
	ringing bool
}

// New returns a dispatcher writing to stderr, keeping the bell out of
// the rendered TUI frames on stdout.
func New() *Dispatcher {
	return &Dispatcher{out: os.Stderr}
}

// NewWriter returns a dispatcher writing to w. Used in tests.
func NewWriter(w io.Writer) *Dispatcher {
	return &Dispatcher{out: w}
}

// Trigger starts the repeating chime for the finished mode. A second
// trigger while already ringing is a no-op. Write failures are ignored;
// the alarm state does not depend on the chime being audible.
func (d *Dispatcher) Trigger(mode session.Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ringing {
		return
	}
	d.ringing = true
	d.stopCh = make(chan struct{})
	go d.ring(d.stopCh)
}

// Stop halts the chime. Idempotent.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.ringing {
		return
	}
	d.ringing = false
	close(d.stopCh)
}

func (d *Dispatcher) ring(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	d.bell()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// stop wins if both channels are ready
			select {
			case <-stop:
				return
			default:
			}
			d.bell()
		}
	}
}

func (d *Dispatcher) bell() {
	_, _ = d.out.Write([]byte("\a"))
}

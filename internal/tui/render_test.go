package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMainViewShowsClockAndStats(t *testing.T) {
	m, _ := setupTestTimer(t)
	view := m.View()
	if !strings.Contains(view, "25:00") {
		t.Fatalf("expected the countdown in the view")
	}
	if !strings.Contains(view, "Sessions: 0") {
		t.Fatalf("expected the statistics footer in the view")
	}
	if !strings.Contains(view, "Focus ready") {
		t.Fatalf("expected the status line in the view")
	}
}

func TestViewBeforeFirstWindowSize(t *testing.T) {
	m, _ := setupTestTimer(t)
	m.width = 0
	if m.View() == "" {
		t.Fatalf("zero-width view should still render a placeholder")
	}
}

func TestAlarmBannerRendered(t *testing.T) {
	m, _ := setupTestTimer(t)
	m.machine.SetDuration(0)
	m, _ = apply(t, m, key(" "))
	m, _ = tick(t, m)
	view := m.View()
	if !strings.Contains(view, "finished") {
		t.Fatalf("expected the alarm banner while in alarm")
	}
}

func TestModalViewShowsDialAndBounds(t *testing.T) {
	m, _ := setupTestTimer(t)
	m = openModal(t, m)
	view := m.View()
	if !strings.Contains(view, "Set Focus duration") {
		t.Fatalf("expected the modal title")
	}
	if !strings.Contains(view, "5–60 minutes") {
		t.Fatalf("expected the focus bounds hint")
	}
	if !strings.Contains(view, "25m") {
		t.Fatalf("expected the dial center label")
	}
}

func TestModalViewFixedHeight(t *testing.T) {
	m, _ := setupTestTimer(t)
	m = openModal(t, m)
	plain := m.View()
	m.modal.errMsg = "Focus must be between 5 and 60 minutes (got 90)"
	withErr := m.View()
	if strings.Count(plain, "\n") != strings.Count(withErr, "\n") {
		t.Fatalf("the error line must not change the modal height")
	}
}

func TestRenderDialHasRimAndHandle(t *testing.T) {
	art := renderDial(15)
	if !strings.Contains(art, "●") {
		t.Fatalf("expected a filled arc on the rim")
	}
	if !strings.Contains(art, "·") {
		t.Fatalf("expected unfilled rim points")
	}
	if !strings.Contains(art, "15m") {
		t.Fatalf("expected the minute label")
	}
	if got := strings.Count(art, "\n"); got != 2*dialRadius {
		t.Fatalf("expected %d dial rows, got %d", 2*dialRadius+1, got+1)
	}
}

func TestWindowSizeAdjustsProgress(t *testing.T) {
	m, _ := setupTestTimer(t)
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.progress.Width != 20 {
		t.Fatalf("expected progress width 20 on a narrow screen, got %d", m.progress.Width)
	}
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.progress.Width != 30 {
		t.Fatalf("expected progress width 30 on a wide screen, got %d", m.progress.Width)
	}
}

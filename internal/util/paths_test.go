package util

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir("pomodial"); got != filepath.Join("/tmp/xdg-data", "pomodial") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestDataDirFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	got := DataDir("pomodial")
	if !strings.HasSuffix(got, filepath.Join("share", "pomodial")) && !strings.HasSuffix(got, "pomodial") {
		t.Fatalf("unexpected fallback data dir %q", got)
	}
}

func TestReportsDirUnderDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := ReportsDir("pomodial"); got != filepath.Join("/tmp/xdg-data", "pomodial", "reports") {
		t.Fatalf("unexpected reports dir %q", got)
	}
}

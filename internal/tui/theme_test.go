package tui

import "testing"

func TestSetThemeUnknownNameKeepsCurrent(t *testing.T) {
	SetTheme("default")
	t.Cleanup(func() { SetTheme("default") })
	SetTheme("no-such-theme")
	if CurrentTheme.Name != "Default" {
		t.Fatalf("unknown theme should not replace the current one, got %s", CurrentTheme.Name)
	}
}

func TestThemeOrderCoversThemes(t *testing.T) {
	if len(ThemeOrder) != len(Themes) {
		t.Fatalf("ThemeOrder and Themes out of sync")
	}
	for _, name := range ThemeOrder {
		if _, ok := Themes[name]; !ok {
			t.Fatalf("ThemeOrder references unknown theme %q", name)
		}
	}
}

func TestModeAccent(t *testing.T) {
	SetTheme("default")
	if ModeAccent(false).GetForeground() == ModeAccent(true).GetForeground() {
		t.Fatalf("focus and break accents should differ")
	}
}

package config

import "testing"

func TestConstants(t *testing.T) {
	if FocusDefault <= 0 {
		t.Fatalf("FocusDefault must be positive")
	}
	if BreakDefault <= 0 {
		t.Fatalf("BreakDefault must be positive")
	}
	if FocusMinMinutes >= FocusMaxMinutes {
		t.Fatalf("focus bounds inverted")
	}
	if BreakMinMinutes >= BreakMaxMinutes {
		t.Fatalf("break bounds inverted")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if UnrestrictedPresses <= 0 {
		t.Fatalf("UnrestrictedPresses must be positive")
	}
}

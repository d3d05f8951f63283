package dial

import (
	"math"
	"testing"
)

func TestAngleFromPointerCardinalPoints(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		expect float64
	}{
		{"top", 50, 10, 0},
		{"right", 90, 50, 90},
		{"bottom", 50, 90, 180},
		{"left", 10, 50, 270},
	}
	for _, c := range cases {
		got := AngleFromPointer(c.x, c.y, 50, 50)
		if math.Abs(got-c.expect) > 0.001 {
			t.Fatalf("%s: expected %v degrees, got %v", c.name, c.expect, got)
		}
	}
}

func TestAngleFromPointerRange(t *testing.T) {
	for deg := 0; deg < 360; deg += 7 {
		rad := (float64(deg) - 90) * math.Pi / 180
		x := 50 + 40*math.Cos(rad)
		y := 50 + 40*math.Sin(rad)
		got := AngleFromPointer(x, y, 50, 50)
		if got < 0 || got >= 360 {
			t.Fatalf("angle %v out of [0,360)", got)
		}
		if math.Abs(got-float64(deg)) > 0.001 {
			t.Fatalf("expected %d degrees, got %v", deg, got)
		}
	}
}

func TestMinutesFromAngleNeverZero(t *testing.T) {
	if got := MinutesFromAngle(0, 1, 60); got != 60 {
		t.Fatalf("0 degrees should read as 60 minutes, got %d", got)
	}
	if got := MinutesFromAngle(1, 1, 60); got == 0 {
		t.Fatalf("MinutesFromAngle must never return 0")
	}
}

func TestMinutesFromAngleClamps(t *testing.T) {
	// 0 degrees wraps to 60, then clamps to the break maximum.
	if got := MinutesFromAngle(0, 1, 30); got != 30 {
		t.Fatalf("expected clamp to 30, got %d", got)
	}
	// 12 degrees is 2 minutes, below the focus minimum of 5.
	if got := MinutesFromAngle(12, 5, 60); got != 5 {
		t.Fatalf("expected clamp to 5, got %d", got)
	}
}

func TestMinuteAngleRoundTrip(t *testing.T) {
	for m := 5; m <= 60; m++ {
		if got := MinutesFromAngle(AngleFromMinutes(m), 5, 60); got != m {
			t.Fatalf("round trip for %d minutes returned %d", m, got)
		}
	}
	for m := 1; m <= 30; m++ {
		if got := MinutesFromAngle(AngleFromMinutes(m), 1, 30); got != m {
			t.Fatalf("break round trip for %d minutes returned %d", m, got)
		}
	}
}

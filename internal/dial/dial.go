// Package dial maps pointer positions on a clock face to minute values
// and back. Angles are measured in degrees from the 12 o'clock position,
// increasing clockwise, so the dial reads like an analog minute hand.
package dial

import "math"

// AngleFromPointer converts a pointer position relative to the dial
// center into a degree value in [0, 360).
func AngleFromPointer(x, y, cx, cy float64) float64 {
	// atan2 measures counterclockwise from 3 o'clock; rotate so zero
	// sits at 12 o'clock and the angle grows clockwise.
	rad := math.Atan2(y-cy, x-cx)
	deg := rad*180/math.Pi + 90
	if deg < 0 {
		deg += 360
	}
	return math.Mod(deg, 360)
}

// MinutesFromAngle converts a dial angle into a whole minute value
// clamped to [min, max]. The 0 and 60 minute positions coincide at the
// top of the dial, so a raw result of 0 reads as a full circle.
func MinutesFromAngle(deg float64, min, max int) int {
	m := int(math.Round(deg / 6))
	if m == 0 {
		m = 60
	}
	if m < min {
		return min
	}
	if m > max {
		return max
	}
	return m
}

// AngleFromMinutes is the display inverse of MinutesFromAngle, used for
// drawing the handle and progress arc.
func AngleFromMinutes(minutes int) float64 {
	return float64(minutes%60) * 6
}

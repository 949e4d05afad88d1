package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Quantize snaps v to the nearest multiple of step. A step of zero or less
// leaves v untouched.
func Quantize(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// WrapAngle normalizes a to (-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// LerpAngle interpolates between two angles along the shortest arc so a
// 270-degree turn expressed as -90 doesn't spin the camera the long way.
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + t*WrapAngle(b-a))
}

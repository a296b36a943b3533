package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// SliderRate returns how much of the a->b path a platform covers per second.
func SliderRate(a, b dmath.Vec2, speed float64) float64 {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length == 0 {
		return 0
	}
	return speed / length
}

// StepSlider advances slider progress by rate*delta in the current direction.
// t stays within [0,1]; the direction flips only on reaching an end.
func StepSlider(t float64, backward bool, rate, delta float64) (float64, bool) {
	step := rate * delta
	if backward {
		t -= step
	} else {
		t += step
	}

	if t >= 1 {
		return 1, true
	}
	if t <= 0 {
		return 0, false
	}
	return t, backward
}

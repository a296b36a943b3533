package gamemath

import (
	"math"

	"github.com/solarlune/resolv"
)

// GetSlopeSurfaceY calculates the slope surface Y at the centre X of r.
// upRightTag and upLeftTag are the resolv tags used to identify slope direction.
func GetSlopeSurfaceY(r Rect, ramp *resolv.Object, upRightTag, upLeftTag string) float64 {
	centerX := r.X + r.W/2
	relativeX := ClampFloat(centerX-ramp.X, 0, ramp.W)
	slope := relativeX / ramp.W

	if ramp.HasTags(upRightTag) {
		// Surface rises from left (Y+H) to right (Y)
		return ramp.Y + ramp.H*(1-slope)
	}
	if ramp.HasTags(upLeftTag) {
		return ramp.Y + ramp.H*slope
	}
	return ramp.Y
}

// SnapToSlopeY returns the Y position to snap an object onto a slope surface.
func SnapToSlopeY(objectH, surfaceY, offset float64) float64 {
	return surfaceY - objectH + offset
}

// SlopeNormal returns the unit normal of a ramp's walking surface, pointing out of the ramp.
// A ramp without a slope tag is flat and its normal points straight up.
func SlopeNormal(ramp *resolv.Object, upRightTag, upLeftTag string) (nx, ny float64) {
	length := math.Hypot(ramp.W, ramp.H)
	if length == 0 {
		return 0, -1
	}
	switch {
	case ramp.HasTags(upRightTag):
		return -ramp.H / length, -ramp.W / length
	case ramp.HasTags(upLeftTag):
		return ramp.H / length, -ramp.W / length
	}
	return 0, -1
}

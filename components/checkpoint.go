package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CheckpointData struct {
	Position math.Vec2 // base of the flag, on the ground
	Active   bool

	// Flag scale while the activation pulse plays; 0 means unscaled.
	Scale float32
	Pulse *gween.Tween
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

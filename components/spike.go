package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// NoGroup is the group id of a spike placed on its own.
const NoGroup = -1

type SpikeData struct {
	Position math.Vec2 // centre of the collider
	Group    int
	Rotation float64 // radians; 0 points up
	Visible  bool
	Alpha    float32
	Reveal   *gween.Tween
}

var Spike = donburi.NewComponentType[SpikeData]()

package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MovingPlatformData drives a slider platform between the centres A and B.
type MovingPlatformData struct {
	A, B            math.Vec2
	Speed           float64
	DeltaTPerSecond float64
	T               float64
	MovingBackward  bool
	Active          bool
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()

package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelEndData struct {
	Position math.Vec2
}

var LevelEnd = donburi.NewComponentType[LevelEndData]()

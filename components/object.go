package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the centre of the collider.
func (o ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the collider so its centre sits at c and refreshes its cells.
func (o ObjectData) SetCenter(c math.Vec2) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

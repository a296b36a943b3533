package components

import (
	"image/color"

	"github.com/automoto/rage-platformer/assets"
	"github.com/yohamta/donburi"
)

type VisualKind int

const (
	VisualRect VisualKind = iota
	VisualRamp
	VisualSpike
	VisualCheckpoint
	VisualDoor
)

// VisualData tells the renderer how to draw an entity's collider.
type VisualData struct {
	Kind  VisualKind
	Color color.RGBA
	Mesh  *assets.Mesh // shared, owned by assets.Visuals; nil for plain shapes
}

var Visual = donburi.NewComponentType[VisualData]()

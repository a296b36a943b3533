package factory

import (
	"github.com/automoto/rage-platformer/archetypes"
	"github.com/automoto/rage-platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLabel creates a world-space text label centred on x.
func CreateLabel(ecs *ecs.ECS, text string, x, y float64) *donburi.Entry {
	entry := archetypes.Label.Spawn(ecs)

	components.Label.SetValue(entry, components.LabelData{
		Text: text,
		X:    x,
		Y:    y,
	})

	return entry
}

package factory

import (
	"github.com/automoto/rage-platformer/archetypes"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevelEnd creates the exit door standing on pos.
func CreateLevelEnd(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	levelEnd := archetypes.LevelEnd.Spawn(ecs)

	w, h := cfg.Level.DoorWidth, cfg.Level.DoorHeight
	obj := newObject(levelEnd, pos.X-w/2, pos.Y-h, w, h, tags.ResolvLevelEnd)
	addToSpace(ecs, obj)

	components.LevelEnd.SetValue(levelEnd, components.LevelEndData{Position: pos})
	components.Visual.SetValue(levelEnd, components.VisualData{
		Kind:  components.VisualDoor,
		Color: cfg.Colors.Door,
	})

	return levelEnd
}

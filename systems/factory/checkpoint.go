package factory

import (
	"github.com/automoto/rage-platformer/archetypes"
	"github.com/automoto/rage-platformer/assets"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCheckpoint creates a checkpoint flag standing on pos.
func CreateCheckpoint(ecs *ecs.ECS, visuals *assets.Visuals, pos math.Vec2) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	w, h := cfg.Level.CheckpointWidth, cfg.Level.CheckpointHeight
	obj := newObject(checkpoint, pos.X-w/2, pos.Y-h, w, h, tags.ResolvCheckpoint)
	addToSpace(ecs, obj)

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Position: pos,
	})
	components.Visual.SetValue(checkpoint, components.VisualData{
		Kind:  components.VisualCheckpoint,
		Color: cfg.Colors.Checkpoint,
		Mesh:  visuals.Checkpoint(),
	})

	return checkpoint
}

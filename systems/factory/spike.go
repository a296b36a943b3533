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

// CreateSpike creates a hidden hazard centred on pos. It stays invisible until
// the player first touches it.
func CreateSpike(ecs *ecs.ECS, visuals *assets.Visuals, pos math.Vec2, group int, rotation float64) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)

	size := cfg.Level.SpikeSize
	obj := newObject(spike, pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvSpike)
	addToSpace(ecs, obj)

	components.Spike.SetValue(spike, components.SpikeData{
		Position: pos,
		Group:    group,
		Rotation: rotation,
	})
	components.Visual.SetValue(spike, components.VisualData{
		Kind:  components.VisualSpike,
		Color: cfg.Colors.Spike,
		Mesh:  visuals.Spike(),
	})

	return spike
}

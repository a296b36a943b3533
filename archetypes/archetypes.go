package archetypes

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Visual,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Ramp,
		components.Object,
		components.Visual,
	)
	Slider = newArchetype(
		tags.Slider,
		components.MovingPlatform,
		components.Object,
		components.Visual,
	)
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Physics,
		components.Controller,
		components.ControllerInput,
	)
	Spike = newArchetype(
		tags.Spike,
		tags.Permanent,
		components.Spike,
		components.Object,
		components.Visual,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		tags.Permanent,
		components.Checkpoint,
		components.Object,
		components.Visual,
	)
	LevelEnd = newArchetype(
		tags.LevelEnd,
		components.LevelEnd,
		components.Object,
		components.Visual,
	)
	Label = newArchetype(
		tags.Label,
		components.Label,
	)
	LevelRoot = newArchetype(
		components.LevelRoot,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"github.com/automoto/rage-platformer/archetypes"
	"github.com/automoto/rage-platformer/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, position math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: position})
}

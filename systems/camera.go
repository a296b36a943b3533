package systems

import (
	"github.com/automoto/rage-platformer/components"
	"github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Center()

	// Center the camera on the player, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centres the camera on the player immediately.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	if playerEntry, ok := tags.Player.First(e.World); ok {
		components.Camera.Get(cameraEntry).Position = components.Object.Get(playerEntry).Center()
	}
}

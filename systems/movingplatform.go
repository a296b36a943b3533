package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/gamemath"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovingPlatforms advances every active slider along its path and carries
// the bodies standing on it. Sliders wait at A until something touches them.
func UpdateMovingPlatforms(ecs *ecs.ECS) {
	delta := cfg.TickDelta()

	components.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e)

		if !platform.Active {
			if !touchedByBody(ecs, obj.Object) {
				return
			}
			platform.Active = true
			log.Debug("slider activated", "x", obj.X, "y", obj.Y)
		}

		direction := 1.0
		if platform.MovingBackward {
			direction = -1
		}
		speedX := (platform.B.X - platform.A.X) * platform.DeltaTPerSecond * direction

		platform.T, platform.MovingBackward = gamemath.StepSlider(platform.T, platform.MovingBackward, platform.DeltaTPerSecond, delta)
		obj.SetCenter(gamemath.LerpVec(platform.A, platform.B, platform.T))

		// Riders are moved directly rather than through their velocity, so a rider
		// can be pushed into other geometry.
		carryRiders(ecs, obj.Object, speedX*delta)
	})
}

func carryRiders(ecs *ecs.ECS, platform *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if components.Physics.Get(e).OnGround != platform {
			return
		}
		rider := components.Object.Get(e)
		rider.X += dx
		rider.Update()
	})
}

// touchedByBody reports whether any dynamic body touches the platform, edges included.
func touchedByBody(ecs *ecs.ECS, platform *resolv.Object) bool {
	bounds := gamemath.RectOf(platform)
	bounds = gamemath.Rect{X: bounds.X - 1, Y: bounds.Y - 1, W: bounds.W + 2, H: bounds.H + 2}

	touched := false
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !touched && bounds.Overlaps(gamemath.RectOf(components.Object.Get(e).Object)) {
			touched = true
		}
	})
	return touched
}

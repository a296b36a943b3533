package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateController applies the queued movement actions to each controller's velocity.
func UpdateController(ecs *ecs.ECS) {
	delta := cfg.TickDelta()

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		controller := components.Controller.Get(e)
		input := components.ControllerInput.Get(e)
		physics := components.Physics.Get(e)

		for _, action := range input.Actions {
			switch action.Kind {
			case components.MoveAction:
				physics.SpeedX = action.Direction * controller.MovementSpeed * delta
			case components.JumpAction:
				if controller.Grounded && !controller.Ducking {
					physics.SpeedY = -controller.JumpImpulse
					PlaySFX(ecs, cfg.SoundJump)
				}
			}
		}
		input.Actions = input.Actions[:0]
	})
}

package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTuning creates a system that reloads the tuning file whenever the
// watcher reports a change and pushes the new values into live entities.
// Reloads happen between ticks, never in the middle of one.
func NewUpdateTuning(watcher *cfg.Watcher) ecs.System {
	return func(e *ecs.ECS) {
		for {
			select {
			case path := <-watcher.Events:
				reloadTuning(e, path)
			case err := <-watcher.Errors:
				log.Warn("tuning watcher error", "err", err)
			default:
				return
			}
		}
	}
}

func reloadTuning(e *ecs.ECS, path string) {
	tuning, _, err := cfg.LoadTuning(path)
	if err != nil {
		log.Warn("tuning reload failed, keeping previous values", "path", path, "err", err)
		return
	}
	tuning.Apply()
	ApplyTuning(e)
	log.Info("tuning reloaded", "path", path)
}

// ApplyTuning copies the current player and physics tuning onto live entities.
func ApplyTuning(e *ecs.ECS) {
	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		controller := components.Controller.Get(entry)
		controller.MovementSpeed = cfg.Player.MovementSpeed
		controller.JumpImpulse = cfg.Player.JumpImpulse
		controller.MaxSlopeAngle = cfg.Player.MaxSlopeAngle
		controller.HasMaxSlope = cfg.Player.MaxSlopeAngle > 0
	})
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		physics.Gravity = cfg.Physics.Gravity
		physics.MaxFallSpeed = cfg.Physics.MaxFallSpeed
	})
}

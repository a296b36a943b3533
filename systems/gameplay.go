package systems

import "github.com/yohamta/donburi/ecs"

// Chain runs systems one after another as a single system.
func Chain(systems ...ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		for _, system := range systems {
			system(e)
		}
	}
}

// NewGameplay returns the per-tick level pipeline behind a single pause gate,
// so pausing stops every stage at once.
func NewGameplay() ecs.System {
	return WithPauseCheck(Chain(
		UpdateControllerInput,
		UpdateGrounding,
		UpdateDucking,
		UpdateController,
		UpdatePhysics,
		UpdateCollisions,
		UpdateMovingPlatforms,
		UpdateTriggers,
		UpdateSpikes,
		UpdateCheckpointVisuals,
		UpdateElapsed,
		UpdateSession,
		UpdateCamera,
	))
}

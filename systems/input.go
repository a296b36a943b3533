package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControllerInput converts this tick's sampled actions into the player's
// movement requests. Must run after the frontend has polled devices and before
// the probes.
func UpdateControllerInput(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := GetOrCreateInput(ecs)
	controllerInput := components.ControllerInput.Get(playerEntry)

	direction := 0.0
	if input.Current[cfg.ActionMoveLeft] {
		direction--
	}
	if input.Current[cfg.ActionMoveRight] {
		direction++
	}

	controllerInput.Actions = append(controllerInput.Actions[:0], components.Move(direction))
	if input.Current[cfg.ActionJump] {
		controllerInput.Actions = append(controllerInput.Actions, components.Jump())
	}
	controllerInput.Duck = input.Current[cfg.ActionDuck]

	if GetAction(input, cfg.ActionReloadCheckpoint).JustPressed {
		log.Debug("checkpoint reload requested")
		LevelRestartEvent.Publish(ecs.World, LevelRestart{Mode: RestoreLastSave})
	}
}

// SetInput replaces the sampled state for this tick, keeping the last one as
// the previous frame.
func SetInput(ecs *ecs.ECS, current [cfg.ActionCount]bool) {
	input := GetOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = current
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

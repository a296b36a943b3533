package frontend

import (
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the Input singleton.
// Must run before any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	systems.SetInput(e, pollDevices())
}

func pollDevices() [cfg.ActionCount]bool {
	var current [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up, down := analogStick(gamepadIDs)
	if left {
		current[cfg.ActionMoveLeft] = true
	}
	if right {
		current[cfg.ActionMoveRight] = true
	}
	if up {
		current[cfg.ActionMenuUp] = true
	}
	if down {
		current[cfg.ActionDuck] = true
		current[cfg.ActionMenuDown] = true
	}
	return current
}

// analogStick reads the left stick of every standard gamepad past the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

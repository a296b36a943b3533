package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause creates the pause system. It handles the pause toggle and menu
// navigation and must run after input sampling but outside the pause gate.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := GetOrCreateInput(e)

		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			if pause.IsPaused {
				pause.SelectedOption = components.MenuResume
			}
			log.Debug("pause toggled", "paused", pause.IsPaused)
		}

		// Only process menu input while paused
		if !pause.IsPaused {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MenuExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}

		PlaySFX(e, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuRestart:
			pause.IsPaused = false
			index := GetOrCreateSession(e).LevelIndex
			LevelRestartEvent.Publish(e.World, LevelRestart{Mode: FullReset, Index: index})
		case components.MenuMainMenu:
			ExitLevel(e)
			sceneChanger.ChangeScene(createMenuScene())
		case components.MenuExit:
			quit()
		}
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

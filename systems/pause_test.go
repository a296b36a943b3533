package systems

import (
	"testing"

	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi/ecs"
)

type sceneRecorder struct {
	scenes []interface{}
}

func (r *sceneRecorder) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

// press samples the given actions and runs the pause system the way a level
// scene does before its gameplay pipeline.
func press(e *ecs.ECS, pause ecs.System, held ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, id := range held {
		current[id] = true
	}
	SetInput(e, current)
	pause(e)
}

func TestPauseFreezesLevel(t *testing.T) {
	e := startLevel(t, 0)
	slider := components.MovingPlatform.Get(firstSlider(t, e))
	slider.Active = true
	tick(e)

	obj := playerObject(t, e)
	x, y := obj.X, obj.Y
	progress := slider.T
	elapsed := GetOrCreateSession(e).Elapsed

	GetOrCreatePause(e).IsPaused = true
	for i := 0; i < 60; i++ {
		tick(e, cfg.ActionMoveRight, cfg.ActionJump)
	}

	if obj.X != x || obj.Y != y {
		t.Errorf("player moved while paused: (%v, %v) -> (%v, %v)", x, y, obj.X, obj.Y)
	}
	if slider.T != progress {
		t.Errorf("slider progress changed while paused: %v -> %v", progress, slider.T)
	}
	if got := GetOrCreateSession(e).Elapsed; got != elapsed {
		t.Errorf("Elapsed changed while paused: %v -> %v", elapsed, got)
	}

	GetOrCreatePause(e).IsPaused = false
	tick(e, cfg.ActionMoveRight)
	if obj.X == x {
		t.Error("player did not move after unpausing")
	}
}

func TestPausedHazardDoesNotKill(t *testing.T) {
	e := startLevel(t, 0)
	obj := playerObject(t, e)
	obj.Y = cfg.Level.WorldBottom + 1
	obj.Update()

	GetOrCreatePause(e).IsPaused = true
	tick(e)

	if got := GetOrCreateSession(e).Deaths; got != 0 {
		t.Fatalf("Deaths = %d while paused, want 0", got)
	}
}

func TestPauseMenu(t *testing.T) {
	t.Run("toggle", func(t *testing.T) {
		e := startLevel(t, 0)
		pause := NewUpdatePause(&sceneRecorder{}, nil, nil)

		press(e, pause, cfg.ActionPause)
		if !GetOrCreatePause(e).IsPaused {
			t.Fatal("pause key did not pause")
		}
		press(e, pause, cfg.ActionPause)
		if !GetOrCreatePause(e).IsPaused {
			t.Fatal("held pause key toggled twice")
		}
		press(e, pause)
		press(e, pause, cfg.ActionPause)
		if GetOrCreatePause(e).IsPaused {
			t.Fatal("second press did not unpause")
		}
	})

	t.Run("navigation wraps", func(t *testing.T) {
		e := startLevel(t, 0)
		pause := NewUpdatePause(&sceneRecorder{}, nil, nil)
		press(e, pause, cfg.ActionPause)
		press(e, pause, cfg.ActionMenuUp)
		if got := GetOrCreatePause(e).SelectedOption; got != components.MenuExit {
			t.Errorf("selected = %v, want MenuExit", got)
		}
		press(e, pause)
		press(e, pause, cfg.ActionMenuDown)
		if got := GetOrCreatePause(e).SelectedOption; got != components.MenuResume {
			t.Errorf("selected = %v, want MenuResume", got)
		}
	})

	t.Run("restart rebuilds the level", func(t *testing.T) {
		e := startLevel(t, 0)
		pause := NewUpdatePause(&sceneRecorder{}, nil, nil)
		ActivateCheckpoint(e, checkpointAt(t, e, 1000))
		UpdateSession(e)
		GetOrCreateSession(e).Deaths = 2

		press(e, pause, cfg.ActionPause)
		press(e, pause, cfg.ActionMenuDown)
		press(e, pause, cfg.ActionMenuSelect)
		if GetOrCreatePause(e).IsPaused {
			t.Fatal("restart left the game paused")
		}
		UpdateSession(e)

		session := GetOrCreateSession(e)
		if session.Save != nil {
			t.Error("restart kept the save")
		}
		if session.Deaths != 2 {
			t.Errorf("Deaths = %d, want 2", session.Deaths)
		}
		assertCenter(t, playerObject(t, e), Origin())
	})

	t.Run("main menu leaves the level", func(t *testing.T) {
		e := startLevel(t, 0)
		scenes := &sceneRecorder{}
		pause := NewUpdatePause(scenes, func() interface{} { return "menu" }, nil)

		press(e, pause, cfg.ActionPause)
		press(e, pause, cfg.ActionMenuDown)
		press(e, pause)
		press(e, pause, cfg.ActionMenuDown)
		press(e, pause, cfg.ActionMenuSelect)

		if len(scenes.scenes) != 1 || scenes.scenes[0] != "menu" {
			t.Fatalf("scenes = %v, want [menu]", scenes.scenes)
		}
		if got := GetOrCreateSession(e).State; got != cfg.StateMainMenu {
			t.Errorf("State = %v, want %v", got, cfg.StateMainMenu)
		}
	})

	t.Run("exit quits", func(t *testing.T) {
		e := startLevel(t, 0)
		quit := 0
		pause := NewUpdatePause(&sceneRecorder{}, nil, func() { quit++ })

		press(e, pause, cfg.ActionPause)
		press(e, pause, cfg.ActionMenuUp)
		press(e, pause, cfg.ActionMenuSelect)
		if quit != 1 {
			t.Fatalf("quit called %d times, want 1", quit)
		}
	})
}

package systems

import (
	"testing"

	"github.com/automoto/rage-platformer/assets"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// startLevel returns a world that has finished entering level index.
func startLevel(t *testing.T, index int) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	StartSession(e, assets.NewVisuals(), index, SessionHooks{})
	UpdateSession(e)
	return e
}

// tick runs one gameplay tick with the given actions held.
func tick(e *ecs.ECS, held ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, id := range held {
		current[id] = true
	}
	SetInput(e, current)
	NewGameplay()(e)
}

// settle ticks with no input until the player is grounded.
func settle(t *testing.T, e *ecs.ECS) {
	t.Helper()
	for i := 0; i < 120; i++ {
		tick(e)
		if playerController(t, e).Grounded {
			return
		}
	}
	t.Fatal("player never landed")
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return entry
}

func playerObject(t *testing.T, e *ecs.ECS) *components.ObjectData {
	t.Helper()
	return components.Object.Get(playerEntry(t, e))
}

func playerController(t *testing.T, e *ecs.ECS) *components.ControllerData {
	t.Helper()
	return components.Controller.Get(playerEntry(t, e))
}

func playerPhysics(t *testing.T, e *ecs.ECS) *components.PhysicsData {
	t.Helper()
	return components.Physics.Get(playerEntry(t, e))
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func rootChildren(t *testing.T, e *ecs.ECS) int {
	t.Helper()
	root, ok := components.LevelRoot.First(e.World)
	if !ok {
		t.Fatal("no level root")
	}
	return len(components.LevelRoot.Get(root).Children)
}

func firstSlider(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.MovingPlatform.First(e.World)
	if !ok {
		t.Fatal("no slider")
	}
	return entry
}

func checkpointAt(t *testing.T, e *ecs.ECS, x float64) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		if components.Checkpoint.Get(entry).Position.X == x {
			found = entry
		}
	})
	if found == nil {
		t.Fatalf("no checkpoint at x=%v", x)
	}
	return found
}

func assertCenter(t *testing.T, obj *components.ObjectData, want math.Vec2) {
	t.Helper()
	if got := obj.Center(); got != want {
		t.Fatalf("player centre = %+v, want %+v", got, want)
	}
}

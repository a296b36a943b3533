package systems

import (
	"math"
	"testing"

	"github.com/automoto/rage-platformer/components"
	"github.com/automoto/rage-platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestGroundedIsRecomputedEveryTick(t *testing.T) {
	e := startLevel(t, 0)

	UpdateGrounding(e)
	if playerController(t, e).Grounded {
		t.Fatal("player grounded while spawning in the air")
	}

	settle(t, e)

	obj := playerObject(t, e)
	obj.Y -= 50
	obj.Update()
	UpdateGrounding(e)
	if playerController(t, e).Grounded {
		t.Error("grounded flag carried over after leaving the floor")
	}
}

func TestGroundingRespectsMaxSlope(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float64
		maxSlope float64
		want     bool
	}{
		{"shallow ramp within limit", 160, 78, 30, true},
		{"45 degree ramp over 30 degree limit", 100, 100, 30, false},
		{"45 degree ramp under 50 degree limit", 100, 100, 50, true},
		{"steep ramp with no limit", 100, 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			factory.CreateSpace(e)
			ramp := factory.CreateRamp(e, 100, 200, tt.w, tt.h, true)
			rampObj := components.Object.Get(ramp)

			// Stand the player on the surface at the ramp's midpoint.
			centerX := rampObj.X + tt.w/2
			surfaceY := rampObj.Y + tt.h/2
			player := factory.CreatePlayer(e, dmath.Vec2{X: centerX, Y: surfaceY - 20})

			controller := components.Controller.Get(player)
			controller.MaxSlopeAngle = tt.maxSlope * math.Pi / 180
			controller.HasMaxSlope = tt.maxSlope > 0

			UpdateGrounding(e)
			if controller.Grounded != tt.want {
				t.Errorf("Grounded = %v, want %v", controller.Grounded, tt.want)
			}
		})
	}
}

package systems

import (
	"testing"

	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newSliderWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	slider := factory.CreateSlider(e, components.MovingPlatformData{
		A:     dmath.Vec2{X: 400, Y: 500},
		B:     dmath.Vec2{X: 800, Y: 500},
		Speed: 250,
	}, 200, cfg.Level.PlatformThickness)
	return e, slider
}

func TestSliderIdleUntilTouched(t *testing.T) {
	e, slider := newSliderWorld(t)
	// Far away from the slider.
	factory.CreatePlayer(e, dmath.Vec2{X: 100, Y: 100})

	start := components.Object.Get(slider).Center()
	for i := 0; i < 30; i++ {
		UpdateMovingPlatforms(e)
	}

	platform := components.MovingPlatform.Get(slider)
	if platform.Active || platform.T != 0 {
		t.Fatalf("untouched slider moved: active=%v t=%v", platform.Active, platform.T)
	}
	if got := components.Object.Get(slider).Center(); got != start {
		t.Errorf("untouched slider centre = %+v, want %+v", got, start)
	}
}

func TestSliderActivatesOnContactAndCarriesRider(t *testing.T) {
	e, slider := newSliderWorld(t)
	sliderObj := components.Object.Get(slider)

	// Player standing on the top surface.
	player := factory.CreatePlayer(e, dmath.Vec2{X: 400, Y: sliderObj.Y - cfg.Player.CollisionHeight/2})
	components.Physics.Get(player).OnGround = sliderObj.Object

	playerObj := components.Object.Get(player)
	startX := playerObj.X
	startSliderX := sliderObj.X

	UpdateMovingPlatforms(e)

	if !components.MovingPlatform.Get(slider).Active {
		t.Fatal("slider did not activate on contact")
	}
	sliderMoved := sliderObj.X - startSliderX
	if sliderMoved <= 0 {
		t.Fatalf("slider moved %v, want forward motion", sliderMoved)
	}
	want := 250 * cfg.TickDelta()
	if got := playerObj.X - startX; !approx(got, want) {
		t.Errorf("rider moved %v, want %v", got, want)
	}
}

func TestSliderProgressStaysInRange(t *testing.T) {
	e, slider := newSliderWorld(t)
	platform := components.MovingPlatform.Get(slider)
	platform.Active = true

	flips := 0
	for i := 0; i < 600; i++ {
		backward := platform.MovingBackward
		UpdateMovingPlatforms(e)

		if platform.T < 0 || platform.T > 1 {
			t.Fatalf("tick %d: t = %v", i, platform.T)
		}
		if platform.MovingBackward != backward {
			flips++
			if platform.T != 0 && platform.T != 1 {
				t.Fatalf("tick %d: direction flipped at t = %v", i, platform.T)
			}
		}
	}
	if flips < 2 {
		t.Errorf("%d direction flips in 10s, want at least 2", flips)
	}

	center := components.Object.Get(slider).Center()
	want := dmath.Vec2{X: 400 + 400*platform.T, Y: 500}
	if !approx(center.X, want.X) || center.Y != want.Y {
		t.Errorf("slider centre = %+v, want %+v", center, want)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

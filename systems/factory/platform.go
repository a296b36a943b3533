package factory

import (
	"github.com/automoto/rage-platformer/archetypes"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/gamemath"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := newObject(platform, x, y, w, h, tags.ResolvSolid)
	addToSpace(ecs, obj)

	components.Visual.SetValue(platform, components.VisualData{
		Kind:  components.VisualRect,
		Color: cfg.Colors.Platform,
	})

	return platform
}

// CreateSlider spawns a moving platform of size w*h whose centre follows data.A -> data.B.
// The collider starts wherever data.T puts it, so restored sliders resume mid-travel.
func CreateSlider(ecs *ecs.ECS, data components.MovingPlatformData, w, h float64) *donburi.Entry {
	slider := archetypes.Slider.Spawn(ecs)

	if data.DeltaTPerSecond == 0 {
		data.DeltaTPerSecond = gamemath.SliderRate(data.A, data.B, data.Speed)
	}
	center := gamemath.LerpVec(data.A, data.B, data.T)

	obj := newObject(slider, center.X-w/2, center.Y-h/2, w, h, tags.ResolvSolid, tags.ResolvMoving)
	addToSpace(ecs, obj)

	components.MovingPlatform.SetValue(slider, data)
	components.Visual.SetValue(slider, components.VisualData{
		Kind:  components.VisualRect,
		Color: cfg.Colors.Slider,
	})

	return slider
}

// CreateRamp creates a slope for ramp collision.
// Uses rectangular bounds for detection, surface height is calculated mathematically.
func CreateRamp(ecs *ecs.ECS, x, y, w, h float64, risingRight bool) *donburi.Entry {
	ramp := archetypes.Ramp.Spawn(ecs)

	slopeTag := tags.SlopeUpLeft
	if risingRight {
		slopeTag = tags.SlopeUpRight
	}
	obj := newObject(ramp, x, y, w, h, tags.ResolvRamp, slopeTag)
	addToSpace(ecs, obj)

	components.Ramp.SetValue(ramp, components.RampData{RisingRight: risingRight})
	components.Visual.SetValue(ramp, components.VisualData{
		Kind:  components.VisualRamp,
		Color: cfg.Colors.Ramp,
	})

	return ramp
}

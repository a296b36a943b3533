package levels

import dmath "github.com/yohamta/donburi/features/math"

func pt(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

// level0 is the tutorial: a spike to jump, two checkpoints, and a slider over a pit.
func level0(b Builder) {
	b.Platform(pt(300, 630), 1000)
	b.Platform(pt(400, 600), 200)
	b.Spike(pt(900, 630))
	b.Checkpoint(pt(1000, 630))
	b.Checkpoint(pt(1100, 630))
	b.SliderPlatform(pt(1350, 630), pt(1750, 630), 200, 250)
	b.Platform(pt(2000, 600), 400)
	b.Ending(pt(2300, 600))

	b.SpikeGroup(200, 300, 700)
	b.SpikeGroup(1350, 1750, 700)
	b.VerticalSpikeGroup(300, 630, 590)
}

func level1(b Builder) {
	b.Platform(pt(300, 630), 1000)
	b.Checkpoint(pt(1000, 630))
	b.SliderPlatform(pt(1350, 630), pt(1850, 630), 200, 250)
	b.SpikeGroup(1350, 2050, 700)

	b.Platform(pt(2100, 630), 300)
	b.Spike(pt(2200, 630))
	b.Ending(pt(2350, 630))
}

// level2 introduces ramps. Both slopes are just under 27 degrees, shallow enough to walk.
func level2(b Builder) {
	b.Platform(pt(300, 630), 800)
	b.Ramp(pt(1100, 628), 160, 78, true)
	b.Platform(pt(1260, 552), 300)
	b.SpikeGroup(1380, 1440, 552)
	b.Checkpoint(pt(1500, 552))
	b.Ramp(pt(1560, 628), 160, 78, false)
	b.Platform(pt(1720, 630), 500)
	b.Ending(pt(2150, 628))
}

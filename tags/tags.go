package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Ramp       = donburi.NewTag().SetName("Ramp")
	Slider     = donburi.NewTag().SetName("Slider")
	Spike      = donburi.NewTag().SetName("Spike")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	LevelEnd   = donburi.NewTag().SetName("LevelEnd")
	Label      = donburi.NewTag().SetName("Label")

	// Permanent marks entities that survive checkpoint restores.
	Permanent = donburi.NewTag().SetName("Permanent")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvRamp       = "ramp"
	ResolvMoving     = "moving"
	ResolvPlayer     = "Player"
	ResolvSpike      = "spike"
	ResolvCheckpoint = "checkpoint"
	ResolvLevelEnd   = "levelend"

	// Slope type tags
	SlopeUpRight = "up_right"
	SlopeUpLeft  = "up_left"
)

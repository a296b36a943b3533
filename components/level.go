package components

import "github.com/yohamta/donburi"

// LevelRootData owns the ephemeral entities of the loaded level.
type LevelRootData struct {
	Index    int
	Children []donburi.Entity
}

var LevelRoot = donburi.NewComponentType[LevelRootData]()

type LabelData struct {
	Text string
	X, Y float64
}

var Label = donburi.NewComponentType[LabelData]()

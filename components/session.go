package components

import (
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding top-level game state and the HUD counters.
type SessionData struct {
	State      cfg.GameStateID
	LevelIndex int
	Deaths     int
	Elapsed    float64 // seconds spent unpaused in the current level
	Save       *SaveData
}

var Session = donburi.NewComponentType[SessionData]()

package config

// GameStateID is the top-level session state.
type GameStateID int

const (
	StateMainMenu GameStateID = iota
	StateLevelSelect
	StateLevel
)

func (s GameStateID) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateLevelSelect:
		return "LevelSelect"
	case StateLevel:
		return "Level"
	}
	return "Unknown"
}

package systems

import (
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// DeathCause says what killed the player.
type DeathCause int

const (
	DeathHazard DeathCause = iota
	DeathFell
)

func (c DeathCause) String() string {
	if c == DeathFell {
		return "fell"
	}
	return "hazard"
}

type Death struct {
	Cause    DeathCause
	Position math.Vec2
}

type LevelComplete struct {
	Index int
}

// CheckpointSaveRequest asks the session to snapshot the level. Respawn is the
// player collider centre to restore to.
type CheckpointSaveRequest struct {
	Respawn math.Vec2
}

// RestartMode selects how a level restart rebuilds the world.
type RestartMode int

const (
	// RestoreLastSave rebuilds only the LevelRoot, from SaveData when present.
	RestoreLastSave RestartMode = iota
	// FullReset rebuilds every level entity and clears SaveData.
	FullReset
)

func (m RestartMode) String() string {
	if m == FullReset {
		return "full_reset"
	}
	return "restore_last_save"
}

type LevelRestart struct {
	Mode RestartMode
	// Index is the level to load; only used by FullReset.
	Index int
	// ResetCounters clears the death count and elapsed time; only used by FullReset.
	ResetCounters bool
}

var (
	DeathEvent                 = events.NewEventType[Death]()
	LevelCompleteEvent         = events.NewEventType[LevelComplete]()
	CheckpointSaveRequestEvent = events.NewEventType[CheckpointSaveRequest]()
	LevelRestartEvent          = events.NewEventType[LevelRestart]()
)

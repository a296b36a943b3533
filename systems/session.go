package systems

import (
	"github.com/automoto/rage-platformer/assets"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/levels"
	"github.com/automoto/rage-platformer/systems/factory"
	"github.com/automoto/rage-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SessionHooks lets the scene layer react to transitions that leave the level.
type SessionHooks struct {
	// GameComplete runs after the last level is finished.
	GameComplete func()
}

// Origin is the entry point of every level.
func Origin() math.Vec2 {
	return math.Vec2{X: cfg.Level.OriginX, Y: cfg.Level.OriginY}
}

// StartSession prepares e for play at level index: it spawns the space, player
// and camera, subscribes the session handlers and requests a full reset that
// builds the level on the next session update.
func StartSession(e *ecs.ECS, visuals *assets.Visuals, index int, hooks SessionHooks) {
	levels.MustExist(index)

	if getSpace(e) == nil {
		factory.CreateSpace(e)
	}
	if _, ok := tags.Player.First(e.World); !ok {
		factory.CreatePlayer(e, Origin())
	}
	if _, ok := components.Camera.First(e.World); !ok {
		factory.CreateCamera(e, Origin())
	}

	session := GetOrCreateSession(e)
	*session = components.SessionData{State: cfg.StateLevel, LevelIndex: index}
	GetOrCreatePause(e).IsPaused = false

	CheckpointSaveRequestEvent.Subscribe(e.World, func(w donburi.World, req CheckpointSaveRequest) {
		onCheckpointSave(e, req)
	})
	DeathEvent.Subscribe(e.World, func(w donburi.World, ev Death) {
		onDeath(e, ev)
	})
	LevelCompleteEvent.Subscribe(e.World, func(w donburi.World, ev LevelComplete) {
		onLevelComplete(e, ev, hooks)
	})
	LevelRestartEvent.Subscribe(e.World, func(w donburi.World, ev LevelRestart) {
		onLevelRestart(e, visuals, ev)
	})

	log.Info("entering level", "index", index, "name", levels.Name(index))
	LevelRestartEvent.Publish(e.World, LevelRestart{Mode: FullReset, Index: index, ResetCounters: true})
}

// UpdateSession applies the events queued so far this tick. Save requests run
// first so a checkpoint touched on the same tick as a death is kept, and
// restarts run last so they see the deaths and completions that caused them.
func UpdateSession(e *ecs.ECS) {
	CheckpointSaveRequestEvent.ProcessEvents(e.World)
	DeathEvent.ProcessEvents(e.World)
	LevelCompleteEvent.ProcessEvents(e.World)
	LevelRestartEvent.ProcessEvents(e.World)
}

// UpdateElapsed accrues level time. It runs inside the pause gate.
func UpdateElapsed(e *ecs.ECS) {
	if session := GetOrCreateSession(e); session.State == cfg.StateLevel {
		session.Elapsed += cfg.TickDelta()
	}
}

func onCheckpointSave(e *ecs.ECS, req CheckpointSaveRequest) {
	session := GetOrCreateSession(e)
	session.Save = &components.SaveData{
		Snapshot: CaptureLevel(e),
		Respawn:  req.Respawn,
	}
	PlaySFX(e, cfg.SoundCheckpoint)
	log.Debug("level saved", "entities", len(session.Save.Snapshot.Entities), "respawn_x", req.Respawn.X, "respawn_y", req.Respawn.Y)
}

func onDeath(e *ecs.ECS, ev Death) {
	session := GetOrCreateSession(e)
	session.Deaths++
	PlaySFX(e, cfg.SoundDeath)
	LevelRestartEvent.Publish(e.World, LevelRestart{Mode: RestoreLastSave})
}

func onLevelComplete(e *ecs.ECS, ev LevelComplete, hooks SessionHooks) {
	PlaySFX(e, cfg.SoundLevelComplete)

	next := ev.Index + 1
	if !levels.Exists(next) {
		log.Info("game complete", "levels", levels.Count(), "deaths", GetOrCreateSession(e).Deaths)
		ExitLevel(e)
		if hooks.GameComplete != nil {
			hooks.GameComplete()
		}
		return
	}

	GetOrCreateSession(e).LevelIndex = next
	LevelRestartEvent.Publish(e.World, LevelRestart{Mode: FullReset, Index: next, ResetCounters: true})
}

func onLevelRestart(e *ecs.ECS, visuals *assets.Visuals, ev LevelRestart) {
	session := GetOrCreateSession(e)
	if session.State != cfg.StateLevel {
		return
	}

	switch ev.Mode {
	case FullReset:
		fullReset(e, visuals, ev.Index, ev.ResetCounters)
	case RestoreLastSave:
		restoreLastSave(e, visuals)
	}
	SnapCamera(e)
}

// fullReset rebuilds the whole level at index and forgets any save.
func fullReset(e *ecs.ECS, visuals *assets.Visuals, index int, resetCounters bool) {
	levels.MustExist(index)

	factory.DespawnLevelRoot(e)
	factory.DespawnPermanent(e)

	session := GetOrCreateSession(e)
	session.LevelIndex = index
	session.Save = nil
	if resetCounters {
		session.Deaths = 0
		session.Elapsed = 0
	}

	resetPlayer(e, Origin())
	factory.GenerateLevel(e, visuals, index, factory.GenerateFull)
	log.Info("level reset", "index", index)
}

// restoreLastSave rebuilds the LevelRoot from the save, or from the script when
// nothing was saved. Spikes and checkpoints are left as they are.
func restoreLastSave(e *ecs.ECS, visuals *assets.Visuals) {
	factory.DespawnLevelRoot(e)

	session := GetOrCreateSession(e)
	if session.Save != nil {
		RestoreLevel(e, session.Save.Snapshot)
		resetPlayer(e, session.Save.Respawn)
		log.Info("restored checkpoint", "index", session.LevelIndex, "deaths", session.Deaths)
		return
	}

	factory.GenerateLevel(e, visuals, session.LevelIndex, factory.GenerateEphemeral)
	resetPlayer(e, Origin())
	log.Info("restarted from origin", "index", session.LevelIndex, "deaths", session.Deaths)
}

// ExitLevel leaves the level state and drops the save.
func ExitLevel(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	session.State = cfg.StateMainMenu
	session.Save = nil
}

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Session))
	}

	ent, _ := components.Session.First(e.World)
	return components.Session.Get(ent)
}

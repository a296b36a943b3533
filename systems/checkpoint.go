package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const checkpointPulseSeconds = 0.4

// ActivateCheckpoint makes entry the active checkpoint. It returns false, and
// requests no save, when entry was already active.
func ActivateCheckpoint(ecs *ecs.ECS, entry *donburi.Entry) bool {
	checkpoint := components.Checkpoint.Get(entry)
	if checkpoint.Active {
		return false
	}

	components.Checkpoint.Each(ecs.World, func(other *donburi.Entry) {
		data := components.Checkpoint.Get(other)
		if !data.Active {
			return
		}
		data.Active = false
		components.Visual.Get(other).Color = cfg.Colors.Checkpoint
	})

	checkpoint.Active = true
	checkpoint.Pulse = gween.New(1.4, 1, checkpointPulseSeconds, ease.OutBack)
	components.Visual.Get(entry).Color = cfg.Colors.CheckpointActive

	respawn := math.Vec2{
		X: checkpoint.Position.X,
		Y: checkpoint.Position.Y - cfg.Player.CollisionHeight/2,
	}
	log.Info("checkpoint reached", "x", checkpoint.Position.X, "y", checkpoint.Position.Y)
	CheckpointSaveRequestEvent.Publish(ecs.World, CheckpointSaveRequest{Respawn: respawn})
	return true
}

// ActiveCheckpoint returns the active checkpoint, if any.
func ActiveCheckpoint(ecs *ecs.ECS) (*donburi.Entry, bool) {
	var active *donburi.Entry
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		if components.Checkpoint.Get(e).Active {
			active = e
		}
	})
	return active, active != nil
}

// UpdateCheckpointVisuals advances the activation pulse.
func UpdateCheckpointVisuals(ecs *ecs.ECS) {
	delta := float32(cfg.TickDelta())
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(e)
		if checkpoint.Pulse == nil {
			return
		}
		scale, done := checkpoint.Pulse.Update(delta)
		checkpoint.Scale = scale
		if done {
			checkpoint.Pulse = nil
			checkpoint.Scale = 0
		}
	})
}

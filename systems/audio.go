package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound cue for the frontend to play at the end of the tick.
func PlaySFX(ecs *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// DrainSFX returns and clears the queued sound cues.
func DrainSFX(ecs *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return nil
	}
	audioData := components.Audio.Get(entry)
	pending := audioData.PendingSFX
	audioData.PendingSFX = nil
	return pending
}

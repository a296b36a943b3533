package components

import (
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues for the audio collaborator (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

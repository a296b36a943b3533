package frontend

import (
	"sync"

	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/systems"
	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalCues         map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every cue (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		rate := beep.SampleRate(cfg.Audio.SampleRate)

		globalCues = make(map[cfg.SoundID][]byte, len(cfg.Sound))
		for id, cue := range cfg.Sound {
			globalCues[id] = renderCue(cue, cfg.Audio.Volume, rate)
		}
		log.Debug("audio ready", "sample_rate", cfg.Audio.SampleRate, "cues", len(globalCues))
	})
}

// UpdateAudio plays the cues queued by the core this tick. It runs last in
// every scene, after the session has applied its events.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	for _, id := range systems.DrainSFX(e) {
		pcm, ok := globalCues[id]
		if !ok || len(pcm) == 0 {
			continue
		}
		player := globalAudioContext.NewPlayerFromBytes(pcm)
		player.Play()
	}
}

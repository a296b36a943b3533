package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDeath
	SoundCheckpoint
	SoundLevelComplete
	SoundMenuNavigate
	SoundMenuSelect
)

// WaveID selects the oscillator shape of a synthesized tone.
type WaveID int

const (
	WaveSine WaveID = iota
	WaveSquare
	WaveSaw
)

// ToneConfig is one note of a cue.
type ToneConfig struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveID
}

// CueConfig describes a synthesized sound effect as a sequence of tones.
type CueConfig struct {
	Tones   []ToneConfig
	Attack  time.Duration
	Release time.Duration
	Volume  float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64
}

var Audio AudioConfig
var Sound map[SoundID]CueConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     0.5,
	}

	Sound = map[SoundID]CueConfig{
		SoundJump: {
			Tones:   []ToneConfig{{Freq: 440, Duration: 60 * time.Millisecond, Wave: WaveSquare}},
			Attack:  5 * time.Millisecond,
			Release: 30 * time.Millisecond,
			Volume:  0.3,
		},
		SoundDeath: {
			Tones: []ToneConfig{
				{Freq: 220, Duration: 90 * time.Millisecond, Wave: WaveSaw},
				{Freq: 110, Duration: 180 * time.Millisecond, Wave: WaveSaw},
			},
			Attack:  5 * time.Millisecond,
			Release: 80 * time.Millisecond,
			Volume:  0.5,
		},
		SoundCheckpoint: {
			Tones: []ToneConfig{
				{Freq: 660, Duration: 70 * time.Millisecond, Wave: WaveSine},
				{Freq: 990, Duration: 110 * time.Millisecond, Wave: WaveSine},
			},
			Attack:  5 * time.Millisecond,
			Release: 60 * time.Millisecond,
			Volume:  0.5,
		},
		SoundLevelComplete: {
			Tones: []ToneConfig{
				{Freq: 523.25, Duration: 100 * time.Millisecond, Wave: WaveSine},
				{Freq: 659.25, Duration: 100 * time.Millisecond, Wave: WaveSine},
				{Freq: 783.99, Duration: 220 * time.Millisecond, Wave: WaveSine},
			},
			Attack:  5 * time.Millisecond,
			Release: 120 * time.Millisecond,
			Volume:  0.6,
		},
		SoundMenuNavigate: {
			Tones:   []ToneConfig{{Freq: 880, Duration: 25 * time.Millisecond, Wave: WaveSquare}},
			Attack:  2 * time.Millisecond,
			Release: 10 * time.Millisecond,
			Volume:  0.2,
		},
		SoundMenuSelect: {
			Tones:   []ToneConfig{{Freq: 1320, Duration: 50 * time.Millisecond, Wave: WaveSquare}},
			Attack:  2 * time.Millisecond,
			Release: 20 * time.Millisecond,
			Volume:  0.25,
		},
	}
}

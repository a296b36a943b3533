package frontend

import (
	"encoding/binary"
	"math"
	"time"

	cfg "github.com/automoto/rage-platformer/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator generates one tone of a fixed length.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     cfg.WaveID
	rate     beep.SampleRate
}

func newOscillator(tone cfg.ToneConfig, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     tone.Freq,
		duration: rate.N(tone.Duration),
		wave:     tone.Wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case cfg.WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case cfg.WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over the final release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total int, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueStreamer plays the tones of a cue back to back under one envelope.
func cueStreamer(cue cfg.CueConfig, master float64, rate beep.SampleRate) (beep.Streamer, int) {
	tones := make([]beep.Streamer, 0, len(cue.Tones))
	total := 0
	for _, tone := range cue.Tones {
		tones = append(tones, newOscillator(tone, rate))
		total += rate.N(tone.Duration)
	}
	shaped := newEnvelope(beep.Seq(tones...), total, cue.Attack, cue.Release, rate)
	return newVolume(shaped, cue.Volume*master), total
}

// renderCue synthesises a cue into 16-bit little-endian stereo PCM.
func renderCue(cue cfg.CueConfig, master float64, rate beep.SampleRate) []byte {
	streamer, total := cueStreamer(cue, master, rate)

	pcm := make([]byte, 0, total*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for _, sample := range buf[:n] {
			for _, channel := range sample {
				v := int16(math.Max(-1, math.Min(1, channel)) * math.MaxInt16)
				pcm = binary.LittleEndian.AppendUint16(pcm, uint16(v))
			}
		}
		if !ok || n == 0 {
			return pcm
		}
	}
}

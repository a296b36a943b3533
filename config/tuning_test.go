package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuningEmbeddedDefault(t *testing.T) {
	tuning, err := ParseTuning(defaultTuningYAML)
	if err != nil {
		t.Fatalf("embedded tuning: %v", err)
	}
	if tuning.Player.MovementSpeed != 15000 {
		t.Errorf("movement speed = %v, want 15000", tuning.Player.MovementSpeed)
	}
	if tuning.Player.JumpImpulse != 400 {
		t.Errorf("jump impulse = %v, want 400", tuning.Player.JumpImpulse)
	}
	if tuning.Audio.Volume == nil || *tuning.Audio.Volume != 0.5 {
		t.Errorf("audio volume = %v, want 0.5", tuning.Audio.Volume)
	}
}

func TestParseTuningRejectsMalformed(t *testing.T) {
	if _, err := ParseTuning([]byte("player: [1, 2")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestTuningApply(t *testing.T) {
	savedPlayer, savedPhysics, savedCamera, savedAudio := Player, Physics, Camera, Audio
	t.Cleanup(func() {
		Player, Physics, Camera, Audio = savedPlayer, savedPhysics, savedCamera, savedAudio
	})

	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T)
	}{
		{
			name: "overrides set fields",
			yaml: "player:\n  jump_impulse: 500\n  max_slope_degrees: 45\nphysics:\n  gravity: 1200\n",
			check: func(t *testing.T) {
				if Player.JumpImpulse != 500 {
					t.Errorf("jump impulse = %v, want 500", Player.JumpImpulse)
				}
				if math.Abs(Player.MaxSlopeAngle-math.Pi/4) > 1e-9 {
					t.Errorf("max slope = %v, want pi/4", Player.MaxSlopeAngle)
				}
				if Physics.Gravity != 1200 {
					t.Errorf("gravity = %v, want 1200", Physics.Gravity)
				}
			},
		},
		{
			name: "zero values keep defaults",
			yaml: "camera:\n  follow_smoothing: 0\n",
			check: func(t *testing.T) {
				if Player.MovementSpeed != savedPlayer.MovementSpeed {
					t.Errorf("movement speed changed to %v", Player.MovementSpeed)
				}
				if Camera.FollowSmoothing != savedCamera.FollowSmoothing {
					t.Errorf("smoothing changed to %v", Camera.FollowSmoothing)
				}
			},
		},
		{
			name: "volume is clamped",
			yaml: "audio:\n  volume: 3\n",
			check: func(t *testing.T) {
				if Audio.Volume != 1 {
					t.Errorf("volume = %v, want 1", Audio.Volume)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Player, Physics, Camera, Audio = savedPlayer, savedPhysics, savedCamera, savedAudio
			tuning, err := ParseTuning([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			tuning.Apply()
			tt.check(t)
		})
	}
}

func TestLoadTuningCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  movement_speed: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, used, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if used != path {
		t.Errorf("used path = %q, want %q", used, path)
	}
	if tuning.Player.MovementSpeed != 9000 {
		t.Errorf("movement speed = %v, want 9000", tuning.Player.MovementSpeed)
	}

	if _, _, err := LoadTuning(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestTickDelta(t *testing.T) {
	saved := Physics
	t.Cleanup(func() { Physics = saved })

	Physics.TPS = 50
	if got := TickDelta(); got != 0.02 {
		t.Errorf("TickDelta() = %v, want 0.02", got)
	}
	Physics.TPS = 0
	if got := TickDelta(); got != 1.0/60 {
		t.Errorf("TickDelta() with no TPS = %v, want 1/60", got)
	}
}

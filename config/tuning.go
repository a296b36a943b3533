package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// Tuning is the subset of configuration that can be overridden from YAML.
// Zero values leave the compiled-in defaults untouched.
type Tuning struct {
	Player struct {
		MovementSpeed   float64 `yaml:"movement_speed"`
		JumpImpulse     float64 `yaml:"jump_impulse"`
		MaxSlopeDegrees float64 `yaml:"max_slope_degrees"`
	} `yaml:"player"`
	Physics struct {
		Gravity      float64 `yaml:"gravity"`
		MaxFallSpeed float64 `yaml:"max_fall_speed"`
	} `yaml:"physics"`
	Camera struct {
		FollowSmoothing float64 `yaml:"follow_smoothing"`
	} `yaml:"camera"`
	Audio struct {
		Volume *float64 `yaml:"volume"`
	} `yaml:"audio"`
}

// ParseTuning decodes a YAML tuning document.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning: %w", err)
	}
	return t, nil
}

// LoadTuning loads the tuning overlay.
// Search order: customPath -> ~/.rageplatformer/tuning.yaml -> ./configs/tuning.yaml -> embedded default.
// The returned path is empty when the embedded default was used.
func LoadTuning(customPath string) (Tuning, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Tuning{}, "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		t, err := ParseTuning(data)
		if err != nil {
			return Tuning{}, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return t, customPath, nil
	}

	for _, path := range []string{userTuningPath(), filepath.Join("configs", "tuning.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if t, err := ParseTuning(data); err == nil {
				return t, path, nil
			}
		}
	}

	t, err := ParseTuning(defaultTuningYAML)
	return t, "", err
}

// Apply copies every set value into the global configuration.
func (t Tuning) Apply() {
	if t.Player.MovementSpeed > 0 {
		Player.MovementSpeed = t.Player.MovementSpeed
	}
	if t.Player.JumpImpulse > 0 {
		Player.JumpImpulse = t.Player.JumpImpulse
	}
	if t.Player.MaxSlopeDegrees != 0 {
		Player.MaxSlopeAngle = t.Player.MaxSlopeDegrees * math.Pi / 180
	}
	if t.Physics.Gravity > 0 {
		Physics.Gravity = t.Physics.Gravity
	}
	if t.Physics.MaxFallSpeed > 0 {
		Physics.MaxFallSpeed = t.Physics.MaxFallSpeed
	}
	if t.Camera.FollowSmoothing > 0 && t.Camera.FollowSmoothing <= 1 {
		Camera.FollowSmoothing = t.Camera.FollowSmoothing
	}
	if t.Audio.Volume != nil {
		Audio.Volume = math.Max(0, math.Min(1, *t.Audio.Volume))
	}
}

// userTuningPath returns the path to the user tuning file, or empty if home is unavailable.
func userTuningPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rageplatformer", "tuning.yaml")
}

package config

import (
	"image/color"
	"math"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement. MovementSpeed is scaled by the tick delta when applied,
	// so the resulting horizontal velocity is MovementSpeed/TPS units per second.
	MovementSpeed float64
	JumpImpulse   float64
	MaxSlopeAngle float64 // radians; <= 0 disables the slope filter

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Probes
	CastShrink         float64 // collider scale used for shape casts
	GroundCastDistance float64
	HeadroomCastOffset float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // units per second squared
	MaxFallSpeed float64 // units per second
	TPS          int
}

// LevelConfig describes world bounds and the geometry constants shared by all level scripts.
type LevelConfig struct {
	SpaceWidth  int
	SpaceHeight int
	CellSize    int

	// Entry point of every level (player collider centre).
	OriginX float64
	OriginY float64

	// A player whose top edge passes this line has fallen out of the world.
	WorldBottom float64

	PlatformThickness float64
	SpikeSize         float64
	CheckpointWidth   float64
	CheckpointHeight  float64
	DoorWidth         float64
	DoorHeight        float64
	LabelOffsetY      float64

	SpikeRevealSeconds float64
}

// ColorConfig holds the flat colors used by the renderer.
type ColorConfig struct {
	Background       color.RGBA
	Player           color.RGBA
	PlayerAirborne   color.RGBA
	Platform         color.RGBA
	Slider           color.RGBA
	Ramp             color.RGBA
	Spike            color.RGBA
	Checkpoint       color.RGBA
	CheckpointActive color.RGBA
	Door             color.RGBA
	Label            color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	TitleGap          int
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title             string
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains the in-level overlay layout.
type HUDConfig struct {
	Margin      float64
	LineHeight  float64
	TextColor   color.RGBA
	ShadowColor color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to StartLevel
	StartLevel  int
	TuningPath  string
	WatchTuning bool

	ShowColliders bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Level LevelConfig
var Colors ColorConfig
var Pause PauseConfig
var Menu MenuConfig
var HUD HUDConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Grey         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Scale:  1,
	}

	Player = PlayerConfig{
		MovementSpeed:      15000,
		JumpImpulse:        400,
		MaxSlopeAngle:      30 * math.Pi / 180,
		CollisionWidth:     20,
		CollisionHeight:    40,
		CastShrink:         0.99,
		GroundCastDistance: 1,
		HeadroomCastOffset: 1,
	}

	Physics = PhysicsConfig{
		Gravity:      980,
		MaxFallSpeed: 900,
		TPS:          60,
	}

	Level = LevelConfig{
		SpaceWidth:         3200,
		SpaceHeight:        1280,
		CellSize:           16,
		OriginX:            800,
		OriginY:            600,
		WorldBottom:        1000,
		PlatformThickness:  4,
		SpikeSize:          24,
		CheckpointWidth:    40,
		CheckpointHeight:   40,
		DoorWidth:          30,
		DoorHeight:         50,
		LabelOffsetY:       -140,
		SpikeRevealSeconds: 0.25,
	}

	Colors = ColorConfig{
		Background:       color.RGBA{R: 24, G: 24, B: 32, A: 255},
		Player:           color.RGBA{R: 240, G: 240, B: 240, A: 255},
		PlayerAirborne:   color.RGBA{R: 200, G: 200, B: 255, A: 255},
		Platform:         Grey,
		Slider:           color.RGBA{R: 180, G: 180, B: 220, A: 255},
		Ramp:             color.RGBA{R: 130, G: 130, B: 130, A: 255},
		Spike:            Red,
		Checkpoint:       White,
		CheckpointActive: LightGreen,
		Door:             color.RGBA{R: 160, G: 110, B: 60, A: 255},
		Label:            White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    30,
		MenuItemGap:       10,
		TitleGap:          30,
		MenuOptions:       []string{"Resume", "Restart Level", "Main Menu", "Quit"},
	}

	Menu = MenuConfig{
		Title:             "Rage Platformer",
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            160,
		MenuStartY:        240,
		MenuItemHeight:    30,
		MenuItemGap:       10,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  18,
		TextColor:   White,
		ShadowColor: BlackOverlay,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}
}

// TickDelta is the simulated duration of a single tick in seconds.
func TickDelta() float64 {
	if Physics.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(Physics.TPS)
}

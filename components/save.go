package components

import "github.com/yohamta/donburi/features/math"

// SnapshotKind selects the factory used to recreate a snapshotted entity.
type SnapshotKind int

const (
	SnapshotPlatform SnapshotKind = iota
	SnapshotRamp
	SnapshotSlider
	SnapshotLevelEnd
	SnapshotLabel
)

// EntitySnapshot is a deep copy of one ephemeral entity's component data.
type EntitySnapshot struct {
	Kind SnapshotKind

	X, Y, W, H float64

	Visual         *VisualData
	Ramp           *RampData
	MovingPlatform *MovingPlatformData
	LevelEnd       *LevelEndData
	Label          *LabelData
}

// LevelSnapshot is an opaque copy of every LevelRoot child.
type LevelSnapshot struct {
	Index    int
	Entities []EntitySnapshot
}

type SaveData struct {
	Snapshot LevelSnapshot
	Respawn  math.Vec2 // player collider centre
}

package assets

import (
	"github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi/features/math"
)

// Mesh is a triangle list in local coordinates around an entity's anchor point.
type Mesh struct {
	Vertices []math.Vec2
	Indices  []uint16
}

// Visuals owns the meshes shared by every spike and checkpoint. Each mesh is
// built on first use and reused by later level generations.
type Visuals struct {
	spike      *Mesh
	checkpoint *Mesh
	builds     int
}

func NewVisuals() *Visuals {
	return &Visuals{}
}

// Spike returns the hazard mesh, centred on the collider centre and pointing up.
func (v *Visuals) Spike() *Mesh {
	if v.spike == nil {
		half := config.Level.SpikeSize / 2
		v.spike = &Mesh{
			Vertices: []math.Vec2{
				{X: -half, Y: half},
				{X: half, Y: half},
				{X: 0, Y: -half},
			},
			Indices: []uint16{0, 1, 2},
		}
		v.builds++
	}
	return v.spike
}

// Checkpoint returns the flag mesh. The anchor is the base of the flag on the ground.
func (v *Visuals) Checkpoint() *Mesh {
	if v.checkpoint == nil {
		half := config.Level.CheckpointWidth / 2
		h := config.Level.CheckpointHeight
		v.checkpoint = &Mesh{
			Vertices: []math.Vec2{
				{X: -half, Y: -h},
				{X: half, Y: -h},
				{X: 0, Y: 0},
			},
			Indices: []uint16{0, 1, 2},
		}
		v.builds++
	}
	return v.checkpoint
}

// Builds reports how many meshes have been constructed so far.
func (v *Visuals) Builds() int {
	return v.builds
}

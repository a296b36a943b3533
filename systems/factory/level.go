package factory

import (
	"math"

	"github.com/automoto/rage-platformer/archetypes"
	"github.com/automoto/rage-platformer/assets"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/levels"
	"github.com/automoto/rage-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// GenerateMode selects which entities a level generation spawns.
type GenerateMode int

const (
	// GenerateFull spawns everything, including permanent spikes and checkpoints.
	GenerateFull GenerateMode = iota
	// GenerateEphemeral spawns only the LevelRoot-owned entities.
	GenerateEphemeral
)

func (m GenerateMode) String() string {
	if m == GenerateEphemeral {
		return "ephemeral"
	}
	return "full"
}

// LevelGenerator turns level script operations into entities.
type LevelGenerator struct {
	ecs     *ecs.ECS
	visuals *assets.Visuals
	mode    GenerateMode
	root    *donburi.Entry
	groups  int
}

// CreateLevelRoot spawns an empty root for the level at index.
func CreateLevelRoot(ecs *ecs.ECS, index int) *donburi.Entry {
	root := archetypes.LevelRoot.Spawn(ecs)
	components.LevelRoot.SetValue(root, components.LevelRootData{Index: index})
	return root
}

// GenerateLevel spawns a new LevelRoot for index and runs the level script into it.
// An unknown index panics.
func GenerateLevel(ecs *ecs.ECS, visuals *assets.Visuals, index int, mode GenerateMode) *donburi.Entry {
	levels.MustExist(index)

	g := &LevelGenerator{
		ecs:     ecs,
		visuals: visuals,
		mode:    mode,
		root:    CreateLevelRoot(ecs, index),
	}
	levels.Run(index, g)

	log.Debug("level generated", "index", index, "mode", mode, "children", len(components.LevelRoot.Get(g.root).Children))
	return g.root
}

// Adopt makes entry a child of the level root so it is despawned with the level.
func Adopt(root, entry *donburi.Entry) {
	data := components.LevelRoot.Get(root)
	data.Children = append(data.Children, entry.Entity())
}

func (g *LevelGenerator) permanent() bool {
	return g.mode == GenerateFull
}

func (g *LevelGenerator) Platform(pos dmath.Vec2, width float64) {
	h := cfg.Level.PlatformThickness
	Adopt(g.root, CreatePlatform(g.ecs, pos.X, pos.Y-h/2, width, h))
}

func (g *LevelGenerator) SliderPlatform(a, b dmath.Vec2, width, speed float64) {
	half := width / 2
	data := components.MovingPlatformData{
		A:     dmath.Vec2{X: a.X + half, Y: a.Y},
		B:     dmath.Vec2{X: b.X + half, Y: b.Y},
		Speed: speed,
	}
	Adopt(g.root, CreateSlider(g.ecs, data, width, cfg.Level.PlatformThickness))
}

func (g *LevelGenerator) Ramp(pos dmath.Vec2, w, h float64, risingRight bool) {
	Adopt(g.root, CreateRamp(g.ecs, pos.X, pos.Y-h, w, h, risingRight))
}

func (g *LevelGenerator) Spike(pos dmath.Vec2) {
	if !g.permanent() {
		return
	}
	CreateSpike(g.ecs, g.visuals, pos, components.NoGroup, 0)
}

func (g *LevelGenerator) SpikeGroup(startX, endX, y float64) {
	if !g.permanent() {
		return
	}
	group := g.nextGroup()
	for _, x := range levels.Tile(startX, endX, cfg.Level.SpikeSize) {
		CreateSpike(g.ecs, g.visuals, dmath.Vec2{X: x, Y: y}, group, 0)
	}
}

// VerticalSpikeGroup lines a wall with spikes pointing right.
func (g *LevelGenerator) VerticalSpikeGroup(x, startY, endY float64) {
	if !g.permanent() {
		return
	}
	group := g.nextGroup()
	for _, y := range levels.Tile(startY, endY, cfg.Level.SpikeSize) {
		CreateSpike(g.ecs, g.visuals, dmath.Vec2{X: x, Y: y}, group, math.Pi/2)
	}
}

func (g *LevelGenerator) Checkpoint(pos dmath.Vec2) {
	if !g.permanent() {
		return
	}
	CreateCheckpoint(g.ecs, g.visuals, pos)
}

func (g *LevelGenerator) Ending(pos dmath.Vec2) {
	Adopt(g.root, CreateLevelEnd(g.ecs, pos))
}

func (g *LevelGenerator) Label(text string) {
	Adopt(g.root, CreateLabel(g.ecs, text, cfg.Level.OriginX, cfg.Level.OriginY+cfg.Level.LabelOffsetY))
}

func (g *LevelGenerator) nextGroup() int {
	id := g.groups
	g.groups++
	return id
}

// DespawnLevelRoot removes every LevelRoot and the entities they own.
func DespawnLevelRoot(ecs *ecs.ECS) {
	var roots []*donburi.Entry
	components.LevelRoot.Each(ecs.World, func(e *donburi.Entry) {
		roots = append(roots, e)
	})
	for _, root := range roots {
		for _, child := range components.LevelRoot.Get(root).Children {
			Destroy(ecs, child)
		}
		ecs.World.Remove(root.Entity())
	}
}

// DespawnPermanent removes every spike and checkpoint.
func DespawnPermanent(ecs *ecs.ECS) {
	var doomed []donburi.Entity
	tags.Permanent.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, entity := range doomed {
		Destroy(ecs, entity)
	}
}

// Destroy removes an entity and its collider from the space.
func Destroy(ecs *ecs.ECS, entity donburi.Entity) {
	if !ecs.World.Valid(entity) {
		return
	}
	entry := ecs.World.Entry(entity)
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(ecs.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entity)
}

package systems

import (
	"github.com/automoto/rage-platformer/components"
	"github.com/automoto/rage-platformer/systems/factory"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CaptureLevel copies the component data of every LevelRoot child. The copy
// shares nothing mutable with the live entities.
func CaptureLevel(ecs *ecs.ECS) components.LevelSnapshot {
	rootEntry, ok := components.LevelRoot.First(ecs.World)
	if !ok {
		return components.LevelSnapshot{}
	}
	root := components.LevelRoot.Get(rootEntry)

	snapshot := components.LevelSnapshot{
		Index:    root.Index,
		Entities: make([]components.EntitySnapshot, 0, len(root.Children)),
	}
	for _, child := range root.Children {
		if !ecs.World.Valid(child) {
			continue
		}
		snapshot.Entities = append(snapshot.Entities, captureEntity(ecs.World.Entry(child)))
	}
	return snapshot
}

func captureEntity(entry *donburi.Entry) components.EntitySnapshot {
	var s components.EntitySnapshot

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		s.X, s.Y, s.W, s.H = obj.X, obj.Y, obj.W, obj.H
	}
	if entry.HasComponent(components.Visual) {
		visual := *components.Visual.Get(entry)
		s.Visual = &visual
	}

	switch {
	case entry.HasComponent(components.MovingPlatform):
		s.Kind = components.SnapshotSlider
		platform := *components.MovingPlatform.Get(entry)
		s.MovingPlatform = &platform
	case entry.HasComponent(components.Ramp):
		s.Kind = components.SnapshotRamp
		ramp := *components.Ramp.Get(entry)
		s.Ramp = &ramp
	case entry.HasComponent(components.LevelEnd):
		s.Kind = components.SnapshotLevelEnd
		levelEnd := *components.LevelEnd.Get(entry)
		s.LevelEnd = &levelEnd
	case entry.HasComponent(components.Label):
		s.Kind = components.SnapshotLabel
		label := *components.Label.Get(entry)
		s.Label = &label
	default:
		s.Kind = components.SnapshotPlatform
	}
	return s
}

// RestoreLevel spawns a new LevelRoot holding fresh entities built from snapshot.
func RestoreLevel(ecs *ecs.ECS, snapshot components.LevelSnapshot) *donburi.Entry {
	root := factory.CreateLevelRoot(ecs, snapshot.Index)

	for _, s := range snapshot.Entities {
		var entry *donburi.Entry
		switch s.Kind {
		case components.SnapshotPlatform:
			entry = factory.CreatePlatform(ecs, s.X, s.Y, s.W, s.H)
		case components.SnapshotRamp:
			entry = factory.CreateRamp(ecs, s.X, s.Y, s.W, s.H, s.Ramp.RisingRight)
		case components.SnapshotSlider:
			entry = factory.CreateSlider(ecs, *s.MovingPlatform, s.W, s.H)
			obj := components.Object.Get(entry)
			obj.X, obj.Y = s.X, s.Y
			obj.Update()
		case components.SnapshotLevelEnd:
			entry = factory.CreateLevelEnd(ecs, s.LevelEnd.Position)
		case components.SnapshotLabel:
			entry = factory.CreateLabel(ecs, s.Label.Text, s.Label.X, s.Label.Y)
		default:
			continue
		}

		if s.Visual != nil && entry.HasComponent(components.Visual) {
			components.Visual.SetValue(entry, *s.Visual)
		}
		factory.Adopt(root, entry)
	}
	return root
}

// resetPlayer stands the player up, stops it and centres its collider on center.
func resetPlayer(ecs *ecs.ECS, center math.Vec2) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	controller := components.Controller.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if controller.Ducking {
		stand(obj.Object, controller)
	}
	controller.Grounded = false

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = nil

	input := components.ControllerInput.Get(playerEntry)
	input.Actions = input.Actions[:0]
	input.Duck = false

	obj.SetCenter(center)
}

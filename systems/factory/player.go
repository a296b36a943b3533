package factory

import (
	"github.com/automoto/rage-platformer/archetypes"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its collider centred on center.
func CreatePlayer(ecs *ecs.ECS, center math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := newObject(player, center.X-w/2, center.Y-h/2, w, h, "character", tags.ResolvPlayer)
	addToSpace(ecs, obj)

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Controller.SetValue(player, NewController())

	return player
}

// NewController returns controller settings taken from the current tuning.
func NewController() components.ControllerData {
	return components.ControllerData{
		MovementSpeed:  cfg.Player.MovementSpeed,
		JumpImpulse:    cfg.Player.JumpImpulse,
		MaxSlopeAngle:  cfg.Player.MaxSlopeAngle,
		HasMaxSlope:    cfg.Player.MaxSlopeAngle > 0,
		StandingHeight: cfg.Player.CollisionHeight,
	}
}

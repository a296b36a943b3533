package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/gamemath"
	"github.com/automoto/rage-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrounding reclassifies every controller as grounded or airborne from a
// short downward cast of its collider.
func UpdateGrounding(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		controller := components.Controller.Get(e)
		obj := components.Object.Get(e)

		probe := gamemath.RectOf(obj.Object).Shrink(cfg.Player.CastShrink)
		hits := gamemath.CastRect(space, probe, cfg.Player.GroundCastDistance, obj.Object, tags.ResolvSolid, tags.ResolvRamp)
		controller.Grounded = gamemath.IsGrounded(hits, controller.Rotation, controller.MaxSlopeAngle, controller.HasMaxSlope)
	})
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry)
}

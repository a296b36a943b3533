package systems

import (
	"math"

	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/gamemath"
	"github.com/automoto/rage-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rampSnapDistance is how far above a ramp surface a falling body still gets
// pulled onto it, so walking downhill keeps contact.
const rampSnapDistance = 8

// UpdateCollisions integrates velocity into position for every dynamic body,
// resolving the horizontal axis first and the vertical axis second.
func UpdateCollisions(ecs *ecs.ECS) {
	delta := cfg.TickDelta()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resolveHorizontalCollision(physics, obj, physics.SpeedX*delta)
		resolveVerticalCollision(physics, obj, physics.SpeedY*delta)
		obj.Update()
	})
}

// resolveHorizontalCollision handles horizontal movement, ramps and walls.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	// Check for ramp collision in front (walking uphill) or below (walking downhill)
	if ramp := findRamp(object, dx, 1); ramp != nil && physics.SpeedY >= 0 {
		moved := gamemath.RectOf(object).Translate(dx, 0)
		surfaceY := gamemath.GetSlopeSurfaceY(moved, ramp, tags.SlopeUpRight, tags.SlopeUpLeft)
		if moved.Bottom() >= surfaceY-rampSnapDistance {
			object.X += dx
			snapToSlopeSurface(physics, object, ramp, surfaceY)
			return
		}
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solid := blockingSolid(object, dx, check); solid != nil {
		// Stop flush against the wall
		contact := check.ContactWithObject(solid).X()
		if dx > 0 {
			dx = math.Max(0, math.Min(dx, contact))
		} else {
			dx = math.Min(0, math.Max(dx, contact))
		}
		physics.SpeedX = 0
	}

	object.X += dx
}

// resolveVerticalCollision handles vertical movement, landing and ceilings.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvRamp)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = handleUpwardCollision(physics, object, check, dy)
	} else {
		dy = handleDownwardCollision(physics, object, check, dy)
	}

	object.Y += dy
}

func findRamp(object *resolv.Object, dx, dy float64) *resolv.Object {
	check := object.Check(dx, dy, tags.ResolvRamp)
	if check == nil {
		return nil
	}
	moved := gamemath.RectOf(object).Translate(dx, 0)
	for _, ramp := range check.ObjectsByTags(tags.ResolvRamp) {
		if moved.X < ramp.X+ramp.W && moved.Right() > ramp.X {
			return ramp
		}
	}
	return nil
}

// blockingSolid returns the nearest solid the object would run into by moving dx.
// Solids it already overlaps do not block, so a body pushed into a wall can walk out.
func blockingSolid(object *resolv.Object, dx float64, check *resolv.Collision) *resolv.Object {
	var nearest *resolv.Object
	best := math.Inf(1)
	rect := gamemath.RectOf(object)
	moved := rect.Translate(dx, 0)

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		bounds := gamemath.RectOf(solid)
		if !moved.Overlaps(bounds) || rect.Overlaps(bounds) {
			continue
		}
		if d := math.Abs(check.ContactWithObject(solid).X()); d < best {
			best = d
			nearest = solid
		}
	}
	return nearest
}

// overlappingSolids returns the solids in the check that share horizontal extent with object.
func overlappingSolids(object *resolv.Object, check *resolv.Collision) []*resolv.Object {
	var solids []*resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if object.X < solid.X+solid.W && object.X+object.W > solid.X {
			solids = append(solids, solid)
		}
	}
	return solids
}

func handleUpwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	for _, solid := range overlappingSolids(object, check) {
		// Ignore anything we are already inside of or that is below us
		if solid.Y+solid.H > object.Y {
			continue
		}
		if contact := check.ContactWithObject(solid).Y(); contact > dy {
			physics.SpeedY = 0
			dy = contact
		}
	}
	return dy
}

func handleDownwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	// Try collision in priority order: ramps, solids
	if newDy, handled := tryRampCollision(physics, object, check, dy); handled {
		return newDy
	}

	if newDy, handled := trySolidCollision(physics, object, check, dy); handled {
		return newDy
	}

	return dy
}

func tryRampCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) (float64, bool) {
	rect := gamemath.RectOf(object)
	for _, ramp := range check.ObjectsByTags(tags.ResolvRamp) {
		if rect.X >= ramp.X+ramp.W || rect.Right() <= ramp.X {
			continue
		}

		surfaceY := gamemath.GetSlopeSurfaceY(rect, ramp, tags.SlopeUpRight, tags.SlopeUpLeft)
		if rect.Bottom()+dy >= surfaceY && rect.Bottom() <= surfaceY+rampSnapDistance {
			physics.OnGround = ramp
			physics.SpeedY = 0
			return surfaceY - rect.Bottom(), true
		}
	}

	return dy, false
}

// snapToSlopeSurface keeps the object standing on the ramp surface.
func snapToSlopeSurface(physics *components.PhysicsData, object *resolv.Object, ramp *resolv.Object, surfaceY float64) {
	object.Y = gamemath.SnapToSlopeY(object.H, surfaceY, 0)
	physics.OnGround = ramp
	physics.SpeedY = 0
}

func trySolidCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) (float64, bool) {
	var landing *resolv.Object
	best := math.Inf(1)

	for _, solid := range overlappingSolids(object, check) {
		// Only land on tops we were above (or just sunk into) at the start of the move
		if object.Y >= solid.Y {
			continue
		}
		if contact := check.ContactWithObject(solid).Y(); contact <= dy && contact < best {
			best = contact
			landing = solid
		}
	}

	if landing == nil {
		return dy, false
	}

	physics.OnGround = landing
	physics.SpeedY = 0
	return best, true
}

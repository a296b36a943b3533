package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/gamemath"
	"github.com/automoto/rage-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDucking runs the stand/duck state machine. Ducking keeps the feet where
// they are; standing back up needs a clear column of full standing height.
func UpdateDucking(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		controller := components.Controller.Get(e)
		input := components.ControllerInput.Get(e)
		obj := components.Object.Get(e).Object

		switch {
		case input.Duck && !controller.Ducking:
			duck(obj, controller)
		case !input.Duck && controller.Ducking:
			if !hasHeadroom(space, obj, controller.StandingHeight) {
				log.Debug("stand blocked", "x", obj.X, "y", obj.Y)
				return
			}
			stand(obj, controller)
		}
	})
}

func duck(obj *resolv.Object, controller *components.ControllerData) {
	half := controller.StandingHeight / 2
	obj.H = half
	obj.Y += half
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Update()
	controller.Ducking = true
}

func stand(obj *resolv.Object, controller *components.ControllerData) {
	obj.Y -= obj.H
	obj.H = controller.StandingHeight
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Update()
	controller.Ducking = false
}

func hasHeadroom(space *resolv.Space, obj *resolv.Object, standingHeight float64) bool {
	probe := gamemath.RectOf(obj).Shrink(cfg.Player.CastShrink).Translate(0, -cfg.Player.HeadroomCastOffset)
	hits := gamemath.CastRect(space, probe, -standingHeight, obj, tags.ResolvSolid, tags.ResolvRamp)
	return len(hits) == 0
}

package frontend

import (
	"fmt"
	"image/color"

	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/fonts"
	"github.com/automoto/rage-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider in the space, hidden spikes included, and
// prints the controller flags under the HUD.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	v := newView(camera.Position, screen.Bounds().Dx(), screen.Bounds().Dy())

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}
		x := float32(obj.X + v.offsetX)
		y := float32(obj.Y + v.offsetY)
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, debugColor(obj), false)
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	controller := components.Controller.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	status := fmt.Sprintf("grounded=%t ducking=%t vx=%.0f vy=%.0f", controller.Grounded, controller.Ducking, physics.SpeedX, physics.SpeedY)
	y := int(cfg.HUD.Margin + 4*cfg.HUD.LineHeight)
	text.Draw(screen, status, fonts.Small.Get(), int(cfg.HUD.Margin), y, cfg.HUD.TextColor)
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255} // Blue
	case obj.HasTags(tags.ResolvSpike):
		return color.RGBA{255, 0, 0, 255} // Red
	case obj.HasTags(tags.ResolvCheckpoint), obj.HasTags(tags.ResolvLevelEnd):
		return color.RGBA{0, 255, 0, 255} // Green
	case obj.HasTags(tags.ResolvRamp):
		return color.RGBA{255, 255, 0, 255} // Yellow
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}

package frontend

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/rage-platformer/assets"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/fonts"
	"github.com/automoto/rage-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	whiteSubImage *ebiten.Image
	triangleOp    = &ebiten.DrawTrianglesOptions{}

	// Reused between draws to avoid allocations
	vertexBuf []ebiten.Vertex
)

// view maps world coordinates to the screen, centred on the camera.
type view struct {
	offsetX, offsetY float64
	minX, maxX       float64
	minY, maxY       float64
}

func newView(camera dmath.Vec2, width, height int) view {
	// Culling bounds
	padding := 64.0
	return view{
		offsetX: float64(width)/2 - camera.X,
		offsetY: float64(height)/2 - camera.Y,
		minX:    camera.X - float64(width)/2 - padding,
		maxX:    camera.X + float64(width)/2 + padding,
		minY:    camera.Y - float64(height)/2 - padding,
		maxY:    camera.Y + float64(height)/2 + padding,
	}
}

func (v view) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

// DrawLevel renders the level geometry, hazards, checkpoints, labels and the player.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	v := newView(camera.Position, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Visual.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		visual := components.Visual.Get(entry)

		switch visual.Kind {
		case components.VisualRect, components.VisualDoor:
			vector.FillRect(screen,
				float32(o.X+v.offsetX), float32(o.Y+v.offsetY),
				float32(o.W), float32(o.H),
				visual.Color, false)
		case components.VisualRamp:
			ramp := components.Ramp.Get(entry)
			drawVertices(screen, rampVertices(o.X, o.Y, o.W, o.H, ramp.RisingRight, v, visual.Color), []uint16{0, 1, 2})
		case components.VisualSpike:
			spike := components.Spike.Get(entry)
			if !spike.Visible {
				return
			}
			vertexBuf = meshVertices(vertexBuf[:0], visual.Mesh, spike.Position, spike.Rotation, 1, v, visual.Color, spike.Alpha)
			drawVertices(screen, vertexBuf, visual.Mesh.Indices)
		case components.VisualCheckpoint:
			checkpoint := components.Checkpoint.Get(entry)
			scale := float64(checkpoint.Scale)
			if scale == 0 {
				scale = 1
			}
			vertexBuf = meshVertices(vertexBuf[:0], visual.Mesh, checkpoint.Position, 0, scale, v, visual.Color, 1)
			drawVertices(screen, vertexBuf, visual.Mesh.Indices)
		}
	})

	components.Label.Each(e.World, func(entry *donburi.Entry) {
		label := components.Label.Get(entry)
		face := fonts.Title.Get()
		width := text.BoundString(face, label.Text).Dx()
		x := int(label.X+v.offsetX) - width/2
		text.Draw(screen, label.Text, face, x, int(label.Y+v.offsetY), cfg.Colors.Label)
	})

	drawPlayer(e, screen, v)
}

// drawPlayer draws the collider as-is, so ducking shows as a squashed body.
func drawPlayer(e *ecs.ECS, screen *ebiten.Image, v view) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	o := components.Object.Get(playerEntry)
	clr := cfg.Colors.Player
	if !components.Controller.Get(playerEntry).Grounded {
		clr = cfg.Colors.PlayerAirborne
	}
	vector.FillRect(screen,
		float32(o.X+v.offsetX), float32(o.Y+v.offsetY),
		float32(o.W), float32(o.H),
		clr, false)
}

func drawVertices(screen *ebiten.Image, vertices []ebiten.Vertex, indices []uint16) {
	// Lazy load the solid source texture
	if whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	screen.DrawTriangles(vertices, indices, whiteSubImage, triangleOp)
}

// meshVertices appends the mesh transformed by scale, rotation and anchor into
// screen space.
func meshVertices(dst []ebiten.Vertex, mesh *assets.Mesh, anchor dmath.Vec2, rotation, scale float64, v view, clr color.RGBA, alpha float32) []ebiten.Vertex {
	sin, cos := math.Sincos(rotation)
	r, g, b, a := colorFloats(clr)
	for _, p := range mesh.Vertices {
		x, y := p.X*scale, p.Y*scale
		x, y = x*cos-y*sin, x*sin+y*cos
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(anchor.X + x + v.offsetX),
			DstY:   float32(anchor.Y + y + v.offsetY),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a * alpha,
		})
	}
	return dst
}

// rampVertices returns the walkable triangle of a ramp's bounds.
func rampVertices(x, y, w, h float64, risingRight bool, v view, clr color.RGBA) []ebiten.Vertex {
	peakX := x
	if risingRight {
		peakX = x + w
	}
	points := [3][2]float64{{x, y + h}, {x + w, y + h}, {peakX, y}}

	r, g, b, a := colorFloats(clr)
	vertices := make([]ebiten.Vertex, 0, 3)
	for _, p := range points {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(p[0] + v.offsetX),
			DstY:   float32(p[1] + v.offsetY),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	return vertices
}

func colorFloats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

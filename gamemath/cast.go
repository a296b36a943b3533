package gamemath

import (
	"math"

	"github.com/automoto/rage-platformer/tags"
	"github.com/solarlune/resolv"
)

// Rect is an axis-aligned box in world space (Y grows downward).
type Rect struct {
	X, Y, W, H float64
}

// RectOf returns the bounds of a resolv object.
func RectOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Right() float64 { return r.X + r.W }

// Shrink scales the rect about its centre.
func (r Rect) Shrink(scale float64) Rect {
	w, h := r.W*scale, r.H*scale
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Overlaps reports whether the interiors of r and o intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// ShapeHit is one surface found by a shape cast.
type ShapeHit struct {
	Object *resolv.Object
	// Distance travelled along the cast before contact; 0 when already touching.
	Distance float64
	// Contact normal on the cast shape, pointing from the caster into the surface.
	NormalX, NormalY float64
}

// CastRect sweeps r vertically by dy (positive is down) and returns every object carrying
// one of the given resolv tags that the sweep reaches. Objects entirely behind the start
// position are ignored, as is ignore itself.
func CastRect(space *resolv.Space, r Rect, dy float64, ignore *resolv.Object, resolvTags ...string) []ShapeHit {
	if space == nil || dy == 0 {
		return nil
	}

	swept := r
	if dy > 0 {
		swept.H += dy
	} else {
		swept.Y += dy
		swept.H -= dy
	}

	// The space only answers cell queries, so a temporary object covering the swept
	// region collects candidates and the exact test below filters them.
	probe := resolv.NewObject(swept.X, swept.Y, swept.W, swept.H)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}

	var hits []ShapeHit
	for _, o := range check.Objects {
		if o == ignore || o == probe {
			continue
		}
		if hit, ok := castAgainst(r, dy, o); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

func castAgainst(r Rect, dy float64, o *resolv.Object) (ShapeHit, bool) {
	target := RectOf(o)
	if r.X >= target.Right() || r.Right() <= target.X {
		return ShapeHit{}, false
	}

	if dy > 0 {
		if o.HasTags(tags.ResolvRamp) {
			surfaceY := GetSlopeSurfaceY(r, o, tags.SlopeUpRight, tags.SlopeUpLeft)
			if r.Y >= target.Bottom() {
				return ShapeHit{}, false
			}
			toi := surfaceY - r.Bottom()
			if toi > dy {
				return ShapeHit{}, false
			}
			nx, ny := SlopeNormal(o, tags.SlopeUpRight, tags.SlopeUpLeft)
			return ShapeHit{Object: o, Distance: math.Max(0, toi), NormalX: -nx, NormalY: -ny}, true
		}

		if target.Bottom() <= r.Y {
			return ShapeHit{}, false
		}
		toi := target.Y - r.Bottom()
		if toi > dy {
			return ShapeHit{}, false
		}
		return ShapeHit{Object: o, Distance: math.Max(0, toi), NormalX: 0, NormalY: 1}, true
	}

	distance := -dy
	if target.Y >= r.Bottom() {
		return ShapeHit{}, false
	}
	toi := r.Y - target.Bottom()
	if toi > distance {
		return ShapeHit{}, false
	}
	return ShapeHit{Object: o, Distance: math.Max(0, toi), NormalX: 0, NormalY: -1}, true
}

// Up is the world up direction (Y grows downward).
var Up = [2]float64{0, -1}

// IsGrounded classifies a set of downward cast hits. With a slope limit, a hit counts only
// if its inverted normal, rotated by rotation into world space, is within maxSlope of up.
// Without a limit any hit counts.
func IsGrounded(hits []ShapeHit, rotation, maxSlope float64, hasMaxSlope bool) bool {
	for _, hit := range hits {
		if !hasMaxSlope {
			return true
		}
		nx, ny := Rotate(-hit.NormalX, -hit.NormalY, rotation)
		if AngleBetween(nx, ny, Up[0], Up[1]) <= maxSlope {
			return true
		}
	}
	return false
}

// Rotate rotates (x, y) by angle radians.
func Rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// AngleBetween returns the unsigned angle between two vectors in radians.
func AngleBetween(ax, ay, bx, by float64) float64 {
	la := math.Hypot(ax, ay)
	lb := math.Hypot(bx, by)
	if la == 0 || lb == 0 {
		return 0
	}
	cos := ClampFloat((ax*bx+ay*by)/(la*lb), -1, 1)
	return math.Acos(cos)
}

// Package levels holds the closed set of level scripts. A script only describes
// content; a Builder decides what to spawn for it.
package levels

import (
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Builder receives the build operations of a level script, in script order.
type Builder interface {
	// Platform places a static platform whose left edge is at pos.X and whose
	// vertical centre is at pos.Y.
	Platform(pos dmath.Vec2, width float64)
	// SliderPlatform places a platform oscillating between the left-edge positions a and b.
	SliderPlatform(a, b dmath.Vec2, width, speed float64)
	// Ramp places a sloped surface with its bottom-left corner at pos.
	Ramp(pos dmath.Vec2, w, h float64, risingRight bool)
	Spike(pos dmath.Vec2)
	SpikeGroup(startX, endX, y float64)
	VerticalSpikeGroup(x, startY, endY float64)
	Checkpoint(pos dmath.Vec2)
	Ending(pos dmath.Vec2)
	Label(text string)
}

// Script builds one level.
type Script func(b Builder)

var scripts = []Script{
	level0,
	level1,
	level2,
}

// Count returns the number of defined levels.
func Count() int {
	return len(scripts)
}

// Exists reports whether index names a defined level.
func Exists(index int) bool {
	return index >= 0 && index < len(scripts)
}

// Name is the display name of a level.
func Name(index int) string {
	return fmt.Sprintf("Level %d", index+1)
}

// MustExist panics for an index outside the script set. Level scripts are
// compiled in, so a bad index is a programming error.
func MustExist(index int) {
	if !Exists(index) {
		panic(fmt.Sprintf("levels: unknown level index %d (have %d levels)", index, len(scripts)))
	}
}

// Run labels the level and executes its script against b.
func Run(index int, b Builder) {
	MustExist(index)
	b.Label(Name(index))
	scripts[index](b)
}

// Tile returns the centres of hazards of the given size laid side by side
// between start and end. The leftover space is split evenly between both ends.
func Tile(start, end, size float64) []float64 {
	if size <= 0 {
		return nil
	}
	if end < start {
		start, end = end, start
	}
	var centres []float64
	for c := math.Mod(end-start, size)/2 + start; c <= end; c += size {
		centres = append(centres, c)
	}
	return centres
}

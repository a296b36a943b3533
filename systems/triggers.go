package systems

import (
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/gamemath"
	"github.com/automoto/rage-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers checks the player against the world boundary, hazards,
// checkpoints and the level end, in that order. A death ends the check for
// this tick.
func UpdateTriggers(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	if obj.Y > cfg.Level.WorldBottom {
		killPlayer(ecs, obj, DeathFell)
		return
	}

	check := obj.Check(0, 0, tags.ResolvSpike, tags.ResolvCheckpoint, tags.ResolvLevelEnd)
	if check == nil {
		return
	}
	bounds := gamemath.RectOf(obj.Object)

	if spikes := touching(bounds, check.ObjectsByTags(tags.ResolvSpike)); len(spikes) > 0 {
		for _, spike := range spikes {
			revealSpike(ecs, spike)
		}
		killPlayer(ecs, obj, DeathHazard)
		return
	}

	for _, checkpoint := range touching(bounds, check.ObjectsByTags(tags.ResolvCheckpoint)) {
		if entry, ok := checkpoint.Data.(*donburi.Entry); ok && entry.Valid() {
			ActivateCheckpoint(ecs, entry)
		}
	}

	if len(touching(bounds, check.ObjectsByTags(tags.ResolvLevelEnd))) > 0 {
		session := GetOrCreateSession(ecs)
		log.Info("level complete", "index", session.LevelIndex, "deaths", session.Deaths, "elapsed", session.Elapsed)
		LevelCompleteEvent.Publish(ecs.World, LevelComplete{Index: session.LevelIndex})
	}
}

// touching keeps the candidates whose bounds actually overlap r. The space only
// narrows candidates down to shared cells.
func touching(r gamemath.Rect, candidates []*resolv.Object) []*resolv.Object {
	var hits []*resolv.Object
	for _, o := range candidates {
		if r.Overlaps(gamemath.RectOf(o)) {
			hits = append(hits, o)
		}
	}
	return hits
}

func killPlayer(ecs *ecs.ECS, obj *components.ObjectData, cause DeathCause) {
	log.Info("player died", "cause", cause, "x", obj.X, "y", obj.Y)
	DeathEvent.Publish(ecs.World, Death{Cause: cause, Position: obj.Center()})
}

// revealSpike shows the touched spike and the rest of its group.
func revealSpike(ecs *ecs.ECS, obj *resolv.Object) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return
	}
	spike := components.Spike.Get(entry)
	if spike.Group == components.NoGroup {
		startReveal(spike)
		return
	}

	group := spike.Group
	components.Spike.Each(ecs.World, func(e *donburi.Entry) {
		if other := components.Spike.Get(e); other.Group == group {
			startReveal(other)
		}
	})
}

func startReveal(spike *components.SpikeData) {
	if spike.Visible {
		return
	}
	spike.Visible = true
	spike.Reveal = gween.New(0, 1, float32(cfg.Level.SpikeRevealSeconds), ease.OutQuad)
}

// UpdateSpikes advances the reveal fades.
func UpdateSpikes(ecs *ecs.ECS) {
	delta := float32(cfg.TickDelta())
	components.Spike.Each(ecs.World, func(e *donburi.Entry) {
		spike := components.Spike.Get(e)
		if spike.Reveal == nil {
			return
		}
		alpha, done := spike.Reveal.Update(delta)
		spike.Alpha = alpha
		if done {
			spike.Reveal = nil
			spike.Alpha = 1
		}
	})
}

package systems

import (
	"testing"

	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi"
)

func TestSpikeRevealCoversGroup(t *testing.T) {
	e := startLevel(t, 0)

	groups := map[int][]*donburi.Entry{}
	components.Spike.Each(e.World, func(entry *donburi.Entry) {
		spike := components.Spike.Get(entry)
		if spike.Visible {
			t.Fatalf("spike at %+v visible before being touched", spike.Position)
		}
		groups[spike.Group] = append(groups[spike.Group], entry)
	})

	var group []*donburi.Entry
	for id, members := range groups {
		if id != components.NoGroup && len(members) > 1 {
			group = members
			break
		}
	}
	if group == nil {
		t.Fatal("level 0 has no spike group")
	}

	revealSpike(e, components.Object.Get(group[0]).Object)
	for _, entry := range group {
		if !components.Spike.Get(entry).Visible {
			t.Errorf("group member at %+v not revealed", components.Spike.Get(entry).Position)
		}
	}
	for _, entry := range groups[components.NoGroup] {
		if components.Spike.Get(entry).Visible {
			t.Error("ungrouped spike revealed with a group")
		}
	}

	ticks := int(cfg.Level.SpikeRevealSeconds*float64(cfg.Physics.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateSpikes(e)
	}
	for _, entry := range group {
		spike := components.Spike.Get(entry)
		if spike.Alpha != 1 || spike.Reveal != nil {
			t.Errorf("reveal unfinished: alpha %v", spike.Alpha)
		}
	}
}

func TestCheckpointPulse(t *testing.T) {
	e := startLevel(t, 0)
	entry := checkpointAt(t, e, 1000)
	ActivateCheckpoint(e, entry)

	UpdateCheckpointVisuals(e)
	checkpoint := components.Checkpoint.Get(entry)
	if checkpoint.Scale <= 1 {
		t.Errorf("scale = %v right after activation, want > 1", checkpoint.Scale)
	}

	ticks := int(checkpointPulseSeconds*float64(cfg.Physics.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateCheckpointVisuals(e)
	}
	if checkpoint.Pulse != nil || checkpoint.Scale != 0 {
		t.Errorf("pulse unfinished: scale %v", checkpoint.Scale)
	}
}

func TestTouchingCheckpointSaves(t *testing.T) {
	e := startLevel(t, 0)
	obj := playerObject(t, e)
	obj.SetCenter(components.Checkpoint.Get(checkpointAt(t, e, 1100)).Position)
	obj.Y -= obj.H / 2
	obj.Update()

	UpdateTriggers(e)
	UpdateSession(e)

	save := GetOrCreateSession(e).Save
	if save == nil {
		t.Fatal("touching a checkpoint did not save")
	}
	if save.Respawn.X != 1100 {
		t.Errorf("respawn x = %v, want 1100", save.Respawn.X)
	}
}

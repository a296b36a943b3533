package systems

import (
	"testing"

	"github.com/automoto/rage-platformer/assets"
	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/levels"
	"github.com/automoto/rage-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestFullResetBuildsFreshLevel(t *testing.T) {
	e := startLevel(t, 0)
	wantSpikes := count(e.World, tags.Spike)
	wantCheckpoints := count(e.World, tags.Checkpoint)
	wantChildren := rootChildren(t, e)

	if wantSpikes == 0 || wantCheckpoints == 0 || wantChildren == 0 {
		t.Fatalf("level 0 looks empty: %d spikes, %d checkpoints, %d children", wantSpikes, wantCheckpoints, wantChildren)
	}

	// Dirty the world, then reset.
	ActivateCheckpoint(e, checkpointAt(t, e, 1000))
	UpdateSession(e)
	for i := 0; i < 20; i++ {
		tick(e, cfg.ActionMoveRight)
	}
	GetOrCreateSession(e).Deaths = 3

	LevelRestartEvent.Publish(e.World, LevelRestart{Mode: FullReset, Index: 0})
	UpdateSession(e)

	session := GetOrCreateSession(e)
	if session.Save != nil {
		t.Error("SaveData survived a full reset")
	}
	if session.Deaths != 3 {
		t.Errorf("Deaths = %d, want 3 when the reset does not clear counters", session.Deaths)
	}
	if got := count(e.World, tags.Spike); got != wantSpikes {
		t.Errorf("%d spikes after reset, want %d", got, wantSpikes)
	}
	if got := count(e.World, tags.Checkpoint); got != wantCheckpoints {
		t.Errorf("%d checkpoints after reset, want %d", got, wantCheckpoints)
	}
	if got := count(e.World, components.LevelRoot); got != 1 {
		t.Errorf("%d level roots, want 1", got)
	}
	if got := rootChildren(t, e); got != wantChildren {
		t.Errorf("%d LevelRoot children after reset, want %d", got, wantChildren)
	}
	if _, ok := ActiveCheckpoint(e); ok {
		t.Error("a checkpoint is still active after a full reset")
	}
	assertCenter(t, playerObject(t, e), Origin())
	if p := playerPhysics(t, e); p.SpeedX != 0 || p.SpeedY != 0 {
		t.Errorf("velocity after reset = (%v, %v), want zero", p.SpeedX, p.SpeedY)
	}
}

func TestFullResetUnknownIndexPanics(t *testing.T) {
	e := startLevel(t, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("full reset to an unknown level did not panic")
		}
	}()
	LevelRestartEvent.Publish(e.World, LevelRestart{Mode: FullReset, Index: levels.Count()})
	UpdateSession(e)
}

func TestCheckpointSaveIsIdempotent(t *testing.T) {
	e := startLevel(t, 0)
	first := checkpointAt(t, e, 1000)
	second := checkpointAt(t, e, 1100)

	if !ActivateCheckpoint(e, first) {
		t.Fatal("first activation requested no save")
	}
	UpdateSession(e)
	save := GetOrCreateSession(e).Save
	if save == nil {
		t.Fatal("no SaveData after reaching a checkpoint")
	}
	wantRespawn := dmath.Vec2{X: 1000, Y: 630 - cfg.Player.CollisionHeight/2}
	if save.Respawn != wantRespawn {
		t.Errorf("respawn = %+v, want %+v", save.Respawn, wantRespawn)
	}

	if ActivateCheckpoint(e, first) {
		t.Error("re-touching the active checkpoint requested a save")
	}
	UpdateSession(e)
	if GetOrCreateSession(e).Save != save {
		t.Error("SaveData replaced by re-touching the active checkpoint")
	}

	ActivateCheckpoint(e, second)
	UpdateSession(e)
	if components.Checkpoint.Get(first).Active {
		t.Error("previous checkpoint still active")
	}
	if !components.Checkpoint.Get(second).Active {
		t.Error("new checkpoint not active")
	}
	if components.Visual.Get(first).Color != cfg.Colors.Checkpoint {
		t.Error("previous checkpoint still drawn as active")
	}
	if got := GetOrCreateSession(e).Save; got == save || got.Respawn.X != 1100 {
		t.Errorf("SaveData not replaced by the new checkpoint: %+v", got)
	}
}

func TestRestoreLastSaveWithSave(t *testing.T) {
	e := startLevel(t, 0)

	// Get the slider moving so the snapshot holds mid-travel state.
	slider := components.MovingPlatform.Get(firstSlider(t, e))
	slider.Active = true
	for i := 0; i < 30; i++ {
		UpdateMovingPlatforms(e)
	}

	ActivateCheckpoint(e, checkpointAt(t, e, 1000))
	UpdateSession(e)
	save := GetOrCreateSession(e).Save
	savedSlider := *save.Snapshot.Entities[sliderIndex(t, save.Snapshot)].MovingPlatform
	wantChildren := rootChildren(t, e)
	wantSpikes := count(e.World, tags.Spike)

	// Keep playing, then die.
	for i := 0; i < 60; i++ {
		UpdateMovingPlatforms(e)
	}
	DeathEvent.Publish(e.World, Death{Cause: DeathHazard})
	UpdateSession(e)

	session := GetOrCreateSession(e)
	if session.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", session.Deaths)
	}
	assertCenter(t, playerObject(t, e), save.Respawn)
	if got := rootChildren(t, e); got != wantChildren {
		t.Errorf("%d LevelRoot children after restore, want %d", got, wantChildren)
	}
	if got := count(e.World, tags.Spike); got != wantSpikes {
		t.Errorf("%d spikes after restore, want %d", got, wantSpikes)
	}
	if got := *components.MovingPlatform.Get(firstSlider(t, e)); got != savedSlider {
		t.Errorf("restored slider = %+v, want %+v", got, savedSlider)
	}
	if _, ok := ActiveCheckpoint(e); !ok {
		t.Error("checkpoint deactivated by a soft restore")
	}
}

func TestRestoreLastSaveWithoutSave(t *testing.T) {
	e := startLevel(t, 0)
	wantChildren := rootChildren(t, e)
	wantSpikes := count(e.World, tags.Spike)

	for i := 0; i < 30; i++ {
		tick(e, cfg.ActionMoveLeft)
	}
	elapsed := GetOrCreateSession(e).Elapsed

	LevelRestartEvent.Publish(e.World, LevelRestart{Mode: RestoreLastSave})
	UpdateSession(e)

	assertCenter(t, playerObject(t, e), Origin())
	if got := rootChildren(t, e); got != wantChildren {
		t.Errorf("%d LevelRoot children, want %d", got, wantChildren)
	}
	if got := count(e.World, tags.Spike); got != wantSpikes {
		t.Errorf("%d spikes, want %d", got, wantSpikes)
	}
	if got := GetOrCreateSession(e).Elapsed; got != elapsed {
		t.Errorf("Elapsed = %v, want %v kept across a restore", got, elapsed)
	}
}

func TestReloadKeyRestoresOnPress(t *testing.T) {
	e := startLevel(t, 0)
	settle(t, e)
	for i := 0; i < 5; i++ {
		tick(e, cfg.ActionMoveRight)
	}

	tick(e, cfg.ActionReloadCheckpoint)
	assertCenter(t, playerObject(t, e), Origin())
	if got := GetOrCreateSession(e).Deaths; got != 0 {
		t.Errorf("Deaths = %d, want 0 after a manual reload", got)
	}

	// Holding the key does not restore again.
	for i := 0; i < 10; i++ {
		tick(e, cfg.ActionReloadCheckpoint, cfg.ActionMoveRight)
	}
	if got := playerObject(t, e).Center().X; got <= Origin().X {
		t.Errorf("centre x = %v, want past the origin while the reload key is held", got)
	}
}

func TestLevelCompleteAdvances(t *testing.T) {
	e := startLevel(t, 0)
	session := GetOrCreateSession(e)
	session.Deaths = 4
	session.Elapsed = 12
	ActivateCheckpoint(e, checkpointAt(t, e, 1000))
	UpdateSession(e)

	LevelCompleteEvent.Publish(e.World, LevelComplete{Index: 0})
	UpdateSession(e)

	if session.LevelIndex != 1 {
		t.Errorf("LevelIndex = %d, want 1", session.LevelIndex)
	}
	if session.Deaths != 0 || session.Elapsed != 0 {
		t.Errorf("counters = (%d deaths, %vs), want reset", session.Deaths, session.Elapsed)
	}
	if session.Save != nil {
		t.Error("SaveData carried into the next level")
	}
	root, _ := components.LevelRoot.First(e.World)
	if got := components.LevelRoot.Get(root).Index; got != 1 {
		t.Errorf("level root index = %d, want 1", got)
	}
	assertCenter(t, playerObject(t, e), Origin())
}

func TestCompletingLastLevelEndsGame(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	completed := 0
	last := levels.Count() - 1
	StartSession(e, assets.NewVisuals(), last, SessionHooks{GameComplete: func() { completed++ }})
	UpdateSession(e)

	LevelCompleteEvent.Publish(e.World, LevelComplete{Index: last})
	UpdateSession(e)

	if completed != 1 {
		t.Fatalf("GameComplete called %d times, want 1", completed)
	}
	session := GetOrCreateSession(e)
	if session.State != cfg.StateMainMenu {
		t.Errorf("State = %v, want %v", session.State, cfg.StateMainMenu)
	}
	if session.Save != nil {
		t.Error("SaveData kept after leaving the level")
	}
}

func TestDeathOnHazardEndToEnd(t *testing.T) {
	e := startLevel(t, 0)
	deaths := 0
	DeathEvent.Subscribe(e.World, func(w donburi.World, ev Death) {
		deaths++
	})

	wantSpikes := count(e.World, tags.Spike)
	wantCheckpoints := count(e.World, tags.Checkpoint)
	wantChildren := rootChildren(t, e)
	oldRoot, _ := components.LevelRoot.First(e.World)
	oldRootEntity := oldRoot.Entity()

	// Walk right from the origin into the lone spike before the checkpoints.
	died := false
	for i := 0; i < 300 && !died; i++ {
		tick(e, cfg.ActionMoveRight)
		died = GetOrCreateSession(e).Deaths > 0
	}
	if !died {
		t.Fatal("player never reached the spike")
	}

	if deaths != 1 {
		t.Errorf("%d Death events, want 1", deaths)
	}
	if got := GetOrCreateSession(e).Deaths; got != 1 {
		t.Errorf("death counter = %d, want 1", got)
	}
	assertCenter(t, playerObject(t, e), Origin())

	if got := count(e.World, tags.Spike); got != wantSpikes {
		t.Errorf("%d spikes after death, want %d", got, wantSpikes)
	}
	if got := count(e.World, tags.Checkpoint); got != wantCheckpoints {
		t.Errorf("%d checkpoints after death, want %d", got, wantCheckpoints)
	}
	if e.World.Valid(oldRootEntity) {
		t.Error("old level root survived the restart")
	}
	if got := rootChildren(t, e); got != wantChildren {
		t.Errorf("%d LevelRoot children after death, want %d", got, wantChildren)
	}

	visible := 0
	components.Spike.Each(e.World, func(entry *donburi.Entry) {
		if components.Spike.Get(entry).Visible {
			visible++
		}
	})
	if visible != 1 {
		t.Errorf("%d visible spikes, want only the one touched", visible)
	}

	// Standing at the origin is safe.
	for i := 0; i < 30; i++ {
		tick(e)
	}
	if deaths != 1 {
		t.Errorf("%d Death events after respawning, want 1", deaths)
	}
}

func TestFallingOutOfWorldKills(t *testing.T) {
	e := startLevel(t, 0)
	obj := playerObject(t, e)
	obj.Y = cfg.Level.WorldBottom + 1
	obj.Update()

	UpdateTriggers(e)
	UpdateSession(e)

	if got := GetOrCreateSession(e).Deaths; got != 1 {
		t.Fatalf("Deaths = %d, want 1", got)
	}
	assertCenter(t, playerObject(t, e), Origin())
}

func sliderIndex(t *testing.T, snapshot components.LevelSnapshot) int {
	t.Helper()
	for i, s := range snapshot.Entities {
		if s.Kind == components.SnapshotSlider {
			return i
		}
	}
	t.Fatal("snapshot has no slider")
	return -1
}

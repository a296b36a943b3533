package systems

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/rage-platformer/config"
)

func TestTuningReloadAppliesToPlayer(t *testing.T) {
	savedPlayer, savedPhysics := cfg.Player, cfg.Physics
	t.Cleanup(func() { cfg.Player, cfg.Physics = savedPlayer, savedPhysics })

	e := startLevel(t, 0)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("player:\n  jump_impulse: 555\nphysics:\n  gravity: 1200\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	watcher := &cfg.Watcher{Events: make(chan string, 1), Errors: make(chan error, 1)}
	watcher.Events <- path
	watcher.Errors <- errors.New("transient")
	NewUpdateTuning(watcher)(e)

	if got := playerController(t, e).JumpImpulse; got != 555 {
		t.Errorf("JumpImpulse = %v, want 555", got)
	}
	if got := playerPhysics(t, e).Gravity; got != 1200 {
		t.Errorf("Gravity = %v, want 1200", got)
	}
	if len(watcher.Events) != 0 || len(watcher.Errors) != 0 {
		t.Error("watcher channels not drained")
	}
}

func TestTuningReloadKeepsValuesOnError(t *testing.T) {
	savedPlayer := cfg.Player
	t.Cleanup(func() { cfg.Player = savedPlayer })

	e := startLevel(t, 0)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	before := playerController(t, e).JumpImpulse

	watcher := &cfg.Watcher{Events: make(chan string, 1), Errors: make(chan error, 1)}
	watcher.Events <- path
	NewUpdateTuning(watcher)(e)

	if got := playerController(t, e).JumpImpulse; got != before {
		t.Errorf("JumpImpulse = %v after a bad reload, want %v", got, before)
	}
}

package systems

import (
	"testing"

	cfg "github.com/automoto/rage-platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMainMenu(t *testing.T) {
	type result struct {
		level       int
		levelSelect bool
		quit        int
	}

	tests := []struct {
		name  string
		moves []cfg.ActionID
		want  result
	}{
		{"play starts the first level", nil, result{level: 0}},
		{"level select", []cfg.ActionID{cfg.ActionMenuDown}, result{level: -1, levelSelect: true}},
		{"quit wraps from the top", []cfg.ActionID{cfg.ActionMenuUp}, result{level: -1, quit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			got := result{level: -1}
			scenes := &sceneRecorder{}
			menu := NewUpdateMenu(scenes,
				func(index int) interface{} { got.level = index; return index },
				func() interface{} { got.levelSelect = true; return "select" },
				func() { got.quit++ },
			)

			for _, move := range tt.moves {
				press(e, menu, move)
				press(e, menu)
			}
			press(e, menu, cfg.ActionMenuSelect)

			if got != tt.want {
				t.Errorf("result = %+v, want %+v", got, tt.want)
			}
			if tt.want.quit == 0 && len(scenes.scenes) != 1 {
				t.Errorf("%d scene changes, want 1", len(scenes.scenes))
			}
		})
	}
}

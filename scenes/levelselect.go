package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/frontend"
	"github.com/automoto/rage-platformer/systems"
	"github.com/automoto/rage-platformer/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene lets the player start any level directly.
type LevelSelectScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.LevelSelectUI
	once         sync.Once

	// Set by UI callbacks, applied after the UI update
	selected     int
	hasSelection bool
	shouldGoBack bool
}

func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc}
}

func (s *LevelSelectScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.selectUI.Update()

	if systems.GetAction(systems.GetOrCreateInput(s.ecsWorld), cfg.ActionMenuBack).JustPressed {
		s.shouldGoBack = true
	}

	if s.hasSelection {
		systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)
		s.sceneChanger.ChangeScene(NewPlatformerScene(s.sceneChanger, s.selected))
		return
	}
	if s.shouldGoBack {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
	}
}

func (s *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if s.ecsWorld == nil {
		return
	}

	s.selectUI.UI.Draw(screen)
}

func (s *LevelSelectScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateSession(s.ecsWorld).State = cfg.StateLevelSelect

	s.ecsWorld.AddSystem(frontend.UpdateInput)
	s.ecsWorld.AddSystem(frontend.UpdateAudio)

	s.selectUI = ui.NewLevelSelectUI(
		func(index int) {
			s.selected = index
			s.hasSelection = true
		},
		func() { s.shouldGoBack = true },
	)
	log.Debug("level select ready", "levels", s.selectUI.LevelCount())
}

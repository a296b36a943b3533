package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rage-platformer/assets"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/frontend"
	"github.com/automoto/rage-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one play session starting at a level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene that enters the level at index.
func NewPlatformerScene(sc SceneChanger, index int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: index}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}

	// Systems that always run
	e.AddSystem(frontend.UpdateInput)
	if watcher := ps.sceneChanger.Watcher(); watcher != nil {
		e.AddSystem(systems.NewUpdateTuning(watcher))
	}
	e.AddSystem(systems.NewUpdatePause(ps.sceneChanger, createMenuScene, ps.sceneChanger.Quit))

	// The whole level pipeline sits behind one pause gate
	e.AddSystem(systems.NewGameplay())

	// Audio runs last so cues queued this tick play this tick
	e.AddSystem(frontend.UpdateAudio)

	e.AddRenderer(cfg.Default, frontend.DrawLevel)
	e.AddRenderer(cfg.Overlay, frontend.DrawHUD)
	e.AddRenderer(cfg.Overlay, frontend.DrawDebug)
	e.AddRenderer(cfg.Overlay, frontend.DrawPause)

	ps.ecs = e

	systems.StartSession(e, assets.NewVisuals(), ps.levelIndex, systems.SessionHooks{
		GameComplete: func() {
			ps.sceneChanger.ChangeScene(createMenuScene())
		},
	})
}

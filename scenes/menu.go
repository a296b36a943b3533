package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/frontend"
	"github.com/automoto/rage-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game: it swaps scenes, ends the run and
// hands out the tuning watcher when hot reload is on.
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
	Watcher() *cfg.Watcher
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createLevelScene := func(index int) interface{} {
		return NewPlatformerScene(ms.sceneChanger, index)
	}
	createLevelSelectScene := func() interface{} {
		return NewLevelSelectScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(frontend.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createLevelScene, createLevelSelectScene, ms.sceneChanger.Quit))
	ms.ecs.AddSystem(frontend.UpdateAudio)

	ms.ecs.AddRenderer(cfg.Default, frontend.DrawMenu)
}

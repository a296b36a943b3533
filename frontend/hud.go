package frontend

import (
	"fmt"
	"image/color"

	"github.com/automoto/rage-platformer/components"
	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/fonts"
	"github.com/automoto/rage-platformer/levels"
	"github.com/automoto/rage-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the level name, death counter and level time in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetOrCreateSession(e)
	if session.State != cfg.StateLevel {
		return
	}

	lines := hudLines(session)
	face := fonts.Regular.Get()
	for i, line := range lines {
		y := int(cfg.HUD.Margin + float64(i+1)*cfg.HUD.LineHeight)
		drawShadowed(screen, line, face, int(cfg.HUD.Margin), y, cfg.HUD.TextColor)
	}
}

func hudLines(session *components.SessionData) []string {
	return []string{
		levels.Name(session.LevelIndex),
		fmt.Sprintf("Deaths: %d", session.Deaths),
		"Time: " + formatElapsed(session.Elapsed),
	}
}

// formatElapsed renders seconds as m:ss.t.
func formatElapsed(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(seconds * 10)
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, clr)
}

// DrawPause renders the PAUSED overlay and the pause menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := systems.GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	drawCentered(screen, "PAUSED", fonts.Title.Get(), width, int(startY)-cfg.Pause.TitleGap, cfg.Pause.TextColorSelected)

	fontFace := fonts.Bold.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		drawCentered(screen, option, fontFace, width, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	drawCentered(screen, "Arrows: Navigate   Enter: Select   Esc: Resume", fonts.Small.Get(), width, int(height)-12, cfg.Pause.TextColorNormal)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := systems.GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), width, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, systems.MenuOptionLabel(option), menuFont, width, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	drawCentered(screen, "Arrows: Navigate   Enter: Select", fonts.Small.Get(), width, int(height)-12, cfg.Menu.TextColorNormal)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.Color) {
	textWidth := text.BoundString(face, s).Dx()
	x := int((width - float64(textWidth)) / 2)
	text.Draw(screen, s, face, x, y, clr)
}

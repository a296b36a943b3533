// rageplatformer is a single-player precision platformer.
//
// Usage:
//
//	rageplatformer                 - Start at the main menu
//	rageplatformer --level 2       - Skip the menus and start Level 3
//
// Flags:
//
//	--config <path>     - Tuning YAML (default: ~/.rageplatformer/tuning.yaml, ./configs/tuning.yaml)
//	--watch             - Reload the tuning file when it changes
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--tps <rate>        - Simulation ticks per second (default: 60)
//	--scale <factor>    - Window scale (default: 1)
//	--debug-draw        - Outline colliders
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	cfg "github.com/automoto/rage-platformer/config"
	"github.com/automoto/rage-platformer/fonts"
	"github.com/automoto/rage-platformer/levels"
	"github.com/automoto/rage-platformer/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene   Scene
	watcher *cfg.Watcher
	quit    bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the run after the current tick.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Watcher() *cfg.Watcher {
	return g.watcher
}

func NewGame(watcher *cfg.Watcher) *Game {
	g := &Game{watcher: watcher}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, cfg.Debug.StartLevel)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

type options struct {
	level    int
	config   string
	watch    bool
	logLevel string
	tps      int
	scale    float64
	debug    bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "rageplatformer",
	Short: "A precision platformer with hidden spikes",
	Long: `Rage Platformer: run, jump and duck through levels full of spikes
you only see once they have killed you. Checkpoints save your progress.

Controls:
  Left/Right, A/D     - Move
  Space/Up/W          - Jump
  Down/S              - Duck
  R                   - Back to the last checkpoint
  Esc/P               - Pause`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(opts)
	},
}

func init() {
	rootCmd.Flags().IntVar(&opts.level, "level", -1, "Start directly in this level index (skips the menus)")
	rootCmd.Flags().StringVar(&opts.config, "config", "", "Path to a tuning YAML file")
	rootCmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().IntVar(&opts.tps, "tps", 60, "Simulation ticks per second")
	rootCmd.Flags().Float64Var(&opts.scale, "scale", 1, "Window scale factor")
	rootCmd.Flags().BoolVar(&opts.debug, "debug-draw", false, "Outline every collider, hidden spikes included")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("rageplatformer failed", "err", err)
		os.Exit(1)
	}
}

// configure validates opts and applies them to the global configuration. It
// returns the tuning file in use, empty when the embedded default was loaded.
func configure(o options) (string, error) {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return "", fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetPrefix("rage")
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.TimeOnly)

	if o.level >= 0 && !levels.Exists(o.level) {
		return "", fmt.Errorf("invalid --level %d: have %d levels", o.level, levels.Count())
	}
	if o.tps <= 0 {
		return "", fmt.Errorf("invalid --tps %d: must be positive", o.tps)
	}
	if o.scale <= 0 {
		return "", fmt.Errorf("invalid --scale %v: must be positive", o.scale)
	}

	tuning, path, err := cfg.LoadTuning(o.config)
	if err != nil {
		return "", err
	}
	tuning.Apply()

	cfg.Physics.TPS = o.tps
	cfg.C.Scale = o.scale
	cfg.Debug.SkipMenu = o.level >= 0
	cfg.Debug.StartLevel = max(o.level, 0)
	cfg.Debug.TuningPath = path
	cfg.Debug.WatchTuning = o.watch
	cfg.Debug.ShowColliders = o.debug
	return path, nil
}

func run(o options) error {
	path, err := configure(o)
	if err != nil {
		return err
	}
	log.Info("starting", "tuning", path, "tps", cfg.Physics.TPS, "skip_menu", cfg.Debug.SkipMenu)

	var watcher *cfg.Watcher
	if o.watch {
		if path == "" {
			log.Warn("--watch ignored: no tuning file on disk")
		} else {
			watcher, err = cfg.NewWatcher(path)
			if err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			defer watcher.Close()
			log.Info("watching tuning file", "path", watcher.Path())
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	ebiten.SetTPS(cfg.Physics.TPS)
	ebiten.SetWindowTitle(cfg.Menu.Title)
	ebiten.SetWindowSize(int(float64(cfg.C.Width)*cfg.C.Scale), int(float64(cfg.C.Height)*cfg.C.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

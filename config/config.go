package config

import (
	"flag"
	"time"

	"github.com/pkg/errors"

	"gesture-snake/game/types"
)

const (
	FrontendRaylib = "raylib"
	FrontendTerm   = "term"

	InputKeys    = "keys"
	InputPointer = "pointer"
	InputAuto    = "auto"
)

// Game holds the simulation parameters. Distances are in world units.
type Game struct {
	GridUnit       int
	HalfExtent     int
	PickupDistance float64
	Reward         int
	BaseDelay      time.Duration
	DelayStep      time.Duration
	MinDelay       time.Duration // exclusive floor
	CollisionPause time.Duration
	FoodStart      types.Cell
	Seed           uint64 // 0 picks a time-based seed
	// RelocateFoodOnReset moves the food after a collision. Off by default:
	// food stays where it was when the run ended.
	RelocateFoodOnReset bool
}

type UI struct {
	Frontend string
	Width    int
	Height   int
	FPS      int
}

type Input struct {
	Source string
}

type Audio struct {
	Enabled bool
}

type Log struct {
	Level string
	File  string
}

type Config struct {
	Game  Game
	UI    UI
	Input Input
	Audio Audio
	Log   Log
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Game: Game{
			GridUnit:       types.GridUnit,
			HalfExtent:     types.HalfExtent,
			PickupDistance: types.PickupDistance,
			Reward:         types.FoodReward,
			BaseDelay:      100 * time.Millisecond,
			DelayStep:      time.Millisecond,
			MinDelay:       20 * time.Millisecond,
			CollisionPause: time.Second,
			FoodStart:      types.Cell{X: 0, Y: 100},
		},
		UI: UI{
			Frontend: FrontendRaylib,
			Width:    900,
			Height:   640,
			FPS:      60,
		},
		Input: Input{
			Source: InputKeys,
		},
		Audio: Audio{
			Enabled: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// RegisterFlags binds command-line flags to cfg. Current values become defaults.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.UI.Frontend, "ui", cfg.UI.Frontend, "Frontend: raylib or term")
	fs.IntVar(&cfg.UI.Width, "width", cfg.UI.Width, "Window width in pixels (raylib)")
	fs.IntVar(&cfg.UI.Height, "height", cfg.UI.Height, "Window height in pixels (raylib)")
	fs.IntVar(&cfg.UI.FPS, "fps", cfg.UI.FPS, "Render frame rate")
	fs.StringVar(&cfg.Input.Source, "input", cfg.Input.Source, "Direction source: keys, pointer or auto")
	fs.BoolVar(&cfg.Audio.Enabled, "sound", cfg.Audio.Enabled, "Play collision and pickup sounds")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "Write logs to this file")
	fs.DurationVar(&cfg.Game.BaseDelay, "delay", cfg.Game.BaseDelay, "Baseline tick interval (lower = faster)")
	fs.DurationVar(&cfg.Game.DelayStep, "delay-step", cfg.Game.DelayStep, "Tick interval decrease per food")
	fs.DurationVar(&cfg.Game.MinDelay, "min-delay", cfg.Game.MinDelay, "Tick interval floor (exclusive)")
	fs.DurationVar(&cfg.Game.CollisionPause, "collision-pause", cfg.Game.CollisionPause, "Pause after a collision")
	fs.Uint64Var(&cfg.Game.Seed, "seed", cfg.Game.Seed, "Food placement seed (0 = time based)")
	fs.BoolVar(&cfg.Game.RelocateFoodOnReset, "relocate-food", cfg.Game.RelocateFoodOnReset, "Move the food when a run ends")
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return errors.Wrap(err, "game")
	}
	switch c.UI.Frontend {
	case FrontendRaylib, FrontendTerm:
	default:
		return errors.Errorf("ui: unknown frontend %q", c.UI.Frontend)
	}
	if c.UI.FPS <= 0 {
		return errors.Errorf("ui: fps must be positive, got %d", c.UI.FPS)
	}
	if c.UI.Frontend == FrontendRaylib && (c.UI.Width <= 0 || c.UI.Height <= 0) {
		return errors.Errorf("ui: window size must be positive, got %dx%d", c.UI.Width, c.UI.Height)
	}
	switch c.Input.Source {
	case InputKeys, InputAuto:
	case InputPointer:
		if c.UI.Frontend != FrontendRaylib {
			return errors.New("input: pointer source requires the raylib frontend")
		}
	default:
		return errors.Errorf("input: unknown source %q", c.Input.Source)
	}
	return nil
}

func (g Game) Validate() error {
	if g.GridUnit <= 0 {
		return errors.Errorf("grid unit must be positive, got %d", g.GridUnit)
	}
	if g.HalfExtent < g.GridUnit {
		return errors.Errorf("half extent %d is smaller than one grid unit", g.HalfExtent)
	}
	if g.PickupDistance <= 0 || g.PickupDistance > float64(g.GridUnit) {
		return errors.Errorf("pickup distance must be in (0, %d], got %v", g.GridUnit, g.PickupDistance)
	}
	if g.Reward <= 0 {
		return errors.Errorf("reward must be positive, got %d", g.Reward)
	}
	if g.MinDelay <= 0 {
		return errors.Errorf("min delay must be positive, got %s", g.MinDelay)
	}
	if g.BaseDelay <= g.MinDelay {
		return errors.Errorf("base delay %s must exceed min delay %s", g.BaseDelay, g.MinDelay)
	}
	if g.DelayStep < 0 {
		return errors.Errorf("delay step must not be negative, got %s", g.DelayStep)
	}
	if g.CollisionPause <= 0 {
		return errors.Errorf("collision pause must be positive, got %s", g.CollisionPause)
	}
	bounds := types.SquareBounds(g.HalfExtent)
	if !bounds.Contains(g.FoodStart) {
		return errors.Errorf("food start %v is outside the board", g.FoodStart)
	}
	if g.FoodStart.Distance(types.Cell{}) < g.PickupDistance {
		return errors.Errorf("food start %v overlaps the origin", g.FoodStart)
	}
	return nil
}

// Bounds returns the playable square
func (g Game) Bounds() types.Bounds {
	return types.SquareBounds(g.HalfExtent)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"gesture-snake/ai"
	"gesture-snake/audio"
	"gesture-snake/config"
	"gesture-snake/game"
	"gesture-snake/input"
	"gesture-snake/log"
	"gesture-snake/ui"
	"gesture-snake/ui/term"
)

func main() {
	cfg := config.Default()
	config.RegisterFlags(flag.CommandLine, &cfg)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) (err error) {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic: %v", r)
			err = errors.Errorf("panic: %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slot := input.NewSlot()
	debounce := input.NewDebounce(slot)
	var source game.DirectionSource = debounce
	var handlers []game.FrameHandler

	if cfg.Input.Source == config.InputAuto {
		pilot := ai.NewAutopilot(cfg.Game.Seed)
		source = pilot
		handlers = append(handlers, pilot.Observe)
	} else {
		handlers = append(handlers, func(f game.Frame) {
			if f.Terminated {
				debounce.Reset()
			}
		})
	}

	if cfg.Audio.Enabled {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Warn("Audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
			handlers = append(handlers, sounds.OnFrame)
		}
	}

	engine := game.NewEngine(game.NewEngineOptions{
		Config: cfg.Game,
		Source: source,
	})
	driver := game.NewDriver(game.NewDriverOptions{
		Engine:   engine,
		Handlers: handlers,
	})
	log.Info("Session %s started: ui=%s input=%s delay=%s", engine.Stats().SessionID,
		cfg.UI.Frontend, cfg.Input.Source, cfg.Game.BaseDelay)

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := driver.Run(ctx); err != nil {
			log.Error("Driver stopped: %v", err)
		}
	}()

	switch cfg.UI.Frontend {
	case config.FrontendTerm:
		err = runTerm(ctx, cfg, driver, slot)
	default:
		err = runRaylib(ctx, cfg, driver, slot)
	}
	cancel()
	wg.Wait()

	stats := engine.Stats()
	log.Info("Session %s ended: %d games, best %d, average %.1f", stats.SessionID,
		stats.GetGamesPlayed(), stats.GetMaxScore(), stats.GetAverageScore())
	return err
}

// setupLogger routes logs to the configured file. The terminal frontend owns
// stderr, so without a file its logs are dropped.
func setupLogger(cfg config.Config) (func(), error) {
	level, err := log.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.Log.File != "":
		f, err := log.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	case cfg.UI.Frontend == config.FrontendTerm:
		out = io.Discard
	}

	log.SetDefaultLogger(log.New(out, "", log.DefaultLoggerFlag, level))
	return closeFn, nil
}

func runRaylib(ctx context.Context, cfg config.Config, driver *game.Driver, slot *input.Slot) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.UI.Width), int32(cfg.UI.Height), "Gesture Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.UI.FPS))

	var sampler input.Sampler = input.NewKeySource(slot, nil)
	if cfg.Input.Source == config.InputPointer {
		sampler = input.NewPointerSource(slot, 40)
	}
	renderer := ui.NewRenderer()
	frames := driver.Frames()

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
			driver.TogglePause()
		}
		if cfg.Input.Source != config.InputAuto {
			sampler.Sample()
		}

		f, seq := frames.Load()
		renderer.Draw(f, seq, driver.Paused())
	}
	return nil
}

func runTerm(ctx context.Context, cfg config.Config, driver *game.Driver, slot *input.Slot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	return term.Run(ctx, screen, driver.Frames(), slot, driver, cfg.UI.FPS)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"ndengine/engine"
	"ndengine/games/snake"
	"ndengine/hal"
	"ndengine/internal/buildinfo"
)

func main() {
	var (
		cfg      engine.Config
		headless hal.HeadlessConfig
		useHL    bool
		grid     int
		verbose  bool
	)
	flag.BoolVar(&useHL, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&headless.TermKeys, "term-keys", false, "Read keys from the terminal in headless mode.")
	flag.IntVar(&cfg.ScreenWidth, "width", 320, "Screen width in logical pixels.")
	flag.IntVar(&cfg.ScreenHeight, "height", 336, "Screen height in logical pixels.")
	flag.IntVar(&cfg.PixelWidth, "pixel-w", 2, "Physical width of one logical pixel.")
	flag.IntVar(&cfg.PixelHeight, "pixel-h", 2, "Physical height of one logical pixel.")
	flag.BoolVar(&cfg.FullScreen, "fullscreen", false, "Start fullscreen.")
	flag.IntVar(&grid, "grid", 32, "Snake board size in cells.")
	flag.BoolVar(&verbose, "v", false, "Log debug output.")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	engine.SetLogger(logger)
	logger.Info("snake", "build", buildinfo.Short())

	if err := run(cfg, useHL, headless, grid, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg engine.Config, useHL bool, headless hal.HeadlessConfig, grid int, logger *slog.Logger) error {
	e, err := engine.New(cfg)
	if err != nil {
		return err
	}
	newApp := func(h hal.HAL) (hal.App, error) {
		if err := e.Start(h, snake.New(grid)); err != nil {
			return nil, err
		}
		return e, nil
	}

	if useHL {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, cfg.Screen(), logger, headless, newApp)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return hal.RunWindow(cfg.Screen(), logger, hal.WindowConfig{Title: "Snake"}, newApp)
}

// Package engine is the rendering core of a small framebuffer game engine.
//
// An Engine owns one draw target (a Sprite), composites colors into it
// according to a global pixel mode and rasterizes lines, rectangles,
// wireframes and bitmap text with integer stepping. It is driven one frame
// at a time by a hal runner.
//
// Nothing in this package locks. Drawing, the clock and the lifecycle hooks
// all run on the runner's goroutine; the RunFlag is the only state shared
// with other goroutines.
package engine

import (
	"fmt"
	"log/slog"

	"ndengine/hal"
)

// Config holds the engine construct parameters.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	PixelWidth   int
	PixelHeight  int
	FullScreen   bool
}

func (c Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 || c.PixelWidth <= 0 || c.PixelHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d pixel %dx%d", ErrInvalidConfig,
			c.ScreenWidth, c.ScreenHeight, c.PixelWidth, c.PixelHeight)
	}
	return nil
}

// Screen returns the hal description of the configured screen.
func (c Config) Screen() hal.Screen {
	return hal.Screen{
		Width:       c.ScreenWidth,
		Height:      c.ScreenHeight,
		PixelWidth:  c.PixelWidth,
		PixelHeight: c.PixelHeight,
		FullScreen:  c.FullScreen,
	}
}

// Engine owns the draw target and drives a Game one frame at a time.
type Engine struct {
	cfg    Config
	log    *slog.Logger
	target *Sprite
	mode   PixelMode
	blend  float32

	clock   *Clock
	running *RunFlag

	onPress   map[hal.KeyCode][]func()
	onRelease map[hal.KeyCode][]func()

	// set by Start
	game      Game
	display   hal.Display
	keys      <-chan hal.KeyEvent
	started   bool
	destroyed bool
}

// New validates cfg and returns an engine whose draw target is a
// ScreenWidth x ScreenHeight sprite.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	target, err := NewSprite(cfg.ScreenWidth, cfg.ScreenHeight)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		log:       Logger(),
		target:    target,
		mode:      ModeNormal,
		blend:     1,
		clock:     NewClock(),
		running:   NewRunFlag(),
		onPress:   make(map[hal.KeyCode][]func()),
		onRelease: make(map[hal.KeyCode][]func()),
	}
	e.log.Info("engine constructed",
		"screen_w", cfg.ScreenWidth, "screen_h", cfg.ScreenHeight,
		"pixel_w", cfg.PixelWidth, "pixel_h", cfg.PixelHeight,
		"fullscreen", cfg.FullScreen)
	return e, nil
}

func (e *Engine) Config() Config    { return e.cfg }
func (e *Engine) ScreenWidth() int  { return e.cfg.ScreenWidth }
func (e *Engine) ScreenHeight() int { return e.cfg.ScreenHeight }

// ElapsedTicks returns the length of the last frame in seconds.
func (e *Engine) ElapsedTicks() float32 { return e.clock.Elapsed() }

// Running returns the run flag shared with input handlers.
func (e *Engine) Running() *RunFlag { return e.running }

// OnQuit asks the frame loop to stop at its next iteration.
func (e *Engine) OnQuit() {
	e.log.Info("quit requested")
	e.running.Stop()
}

// SetDrawTarget installs s as the draw target. The engine takes ownership:
// the caller must not use s afterwards. The previous target is dropped.
func (e *Engine) SetDrawTarget(s *Sprite) error {
	if s == nil {
		return ErrNoDrawTarget
	}
	e.target = s
	e.log.Debug("draw target set", "width", s.Width(), "height", s.Height())
	return nil
}

// TakeDrawTarget hands the draw target back to the caller and leaves the
// engine without one. It returns nil when no target is installed.
func (e *Engine) TakeDrawTarget() *Sprite {
	s := e.target
	e.target = nil
	return s
}

// DrawTarget exposes the active target for presentation and inspection.
func (e *Engine) DrawTarget() *Sprite { return e.target }

// ClearScreen fills the draw target with p, ignoring the pixel mode.
func (e *Engine) ClearScreen(p Pixel) error {
	if e.target == nil {
		return ErrNoDrawTarget
	}
	e.target.Fill(p)
	return nil
}

// ConnectKeyPress registers fn to run when key is pressed.
func (e *Engine) ConnectKeyPress(key hal.KeyCode, fn func()) {
	e.onPress[key] = append(e.onPress[key], fn)
	e.log.Debug("key press bound", "key", key)
}

// ConnectKeyRelease registers fn to run when key is released.
func (e *Engine) ConnectKeyRelease(key hal.KeyCode, fn func()) {
	e.onRelease[key] = append(e.onRelease[key], fn)
	e.log.Debug("key release bound", "key", key)
}

// dispatchKeys runs the callbacks for every event already queued.
func (e *Engine) dispatchKeys() {
	for e.keys != nil {
		select {
		case ev, ok := <-e.keys:
			if !ok {
				e.keys = nil
				return
			}
			cbs := e.onRelease[ev.Code]
			if ev.Press {
				cbs = e.onPress[ev.Code]
			}
			for _, fn := range cbs {
				fn()
			}
		default:
			return
		}
	}
}

package engine

import (
	"fmt"

	"ndengine/hal"
)

// Game is the set of lifecycle hooks a client implements.
type Game interface {
	OnCreate(e *Engine) error
	OnUpdate(e *Engine, elapsed float32) error
	OnDestroy(e *Engine) error
}

// BaseGame implements Game with no-ops. Embed it and override what you need.
type BaseGame struct{}

func (BaseGame) OnCreate(*Engine) error          { return nil }
func (BaseGame) OnUpdate(*Engine, float32) error { return nil }
func (BaseGame) OnDestroy(*Engine) error         { return nil }

var _ hal.App = (*Engine)(nil)

// Start binds the engine to a host and runs g.OnCreate. Afterwards the
// engine is a hal.App: the runner calls Step once per frame and Close once
// at the end.
func (e *Engine) Start(h hal.HAL, g Game) error {
	if g == nil {
		return ErrNoGame
	}
	if e.started {
		return fmt.Errorf("engine: already started")
	}
	if h != nil {
		if l := h.Logger(); l != nil {
			e.log = l
		}
		e.display = h.Display()
		if in := h.Input(); in != nil {
			if k := in.Keyboard(); k != nil {
				e.keys = k.Events()
			}
		}
	}
	e.game = g
	e.started = true

	if err := g.OnCreate(e); err != nil {
		return fmt.Errorf("engine: on create: %w", err)
	}
	e.log.Info("game created")
	e.clock.Reset()
	return nil
}

// Step runs one frame: poll the run flag, deliver queued key events, tick
// the clock, call OnUpdate and present the draw target. After the run flag
// clears it destroys the game and returns hal.ErrStopped.
func (e *Engine) Step() error {
	if !e.started {
		return fmt.Errorf("engine: step before start")
	}
	if !e.running.Running() {
		if err := e.Close(); err != nil {
			return err
		}
		return hal.ErrStopped
	}

	e.dispatchKeys()
	elapsed := e.clock.Tick()
	if err := e.game.OnUpdate(e, elapsed); err != nil {
		return fmt.Errorf("engine: on update: %w", err)
	}
	return e.present()
}

func (e *Engine) present() error {
	if e.display == nil || e.target == nil {
		return nil
	}
	return e.display.Present(e.target.Width(), e.target.Height(), e.target.Pixels())
}

// Close stops the run flag and runs OnDestroy once.
func (e *Engine) Close() error {
	e.running.Stop()
	if !e.started || e.destroyed {
		return nil
	}
	e.destroyed = true
	if err := e.game.OnDestroy(e); err != nil {
		e.log.Warn("on destroy failed", "err", err)
		return fmt.Errorf("engine: on destroy: %w", err)
	}
	e.log.Info("game destroyed")
	return nil
}

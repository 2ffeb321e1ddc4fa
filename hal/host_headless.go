package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	// TermKeys reads keys from a raw-mode terminal on stdin.
	TermKeys bool
}

// Headless runs an app without opening a window.
type Headless struct {
	h   *hostHAL
	cfg HeadlessConfig
}

func NewHeadless(screen Screen, logger *slog.Logger, cfg HeadlessConfig) *Headless {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	return &Headless{h: newHost(screen, logger), cfg: cfg}
}

// HAL returns the host abstraction the app is built against.
func (r *Headless) HAL() HAL { return r.h }

// Keyboard returns the sink test code and the terminal reader feed.
func (r *Headless) Keyboard() *InjectKeyboard { return &InjectKeyboard{k: r.h.kbd} }

// LastFrame returns a copy of the last presented frame at physical size and
// the number of frames presented.
func (r *Headless) LastFrame() (*image.RGBA, uint64) { return r.h.fb.lastFrame() }

// Run steps app at the configured rate until ctx ends, the tick limit is
// reached or the app stops. app.Close is always called.
func (r *Headless) Run(ctx context.Context, app App) (err error) {
	d := time.Second / time.Duration(r.cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", r.cfg.Hz)
	}

	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if r.cfg.TermKeys {
		tk, terr := startTermKeyboard(r.h.kbd)
		if terr != nil {
			r.h.logger.Warn("terminal keys unavailable", "err", terr)
		} else {
			defer tk.stop()
		}
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := app.Step(); err != nil {
				if errors.Is(err, ErrStopped) {
					return nil
				}
				return err
			}
			tick++
			if r.cfg.Ticks > 0 && tick >= r.cfg.Ticks {
				return nil
			}
		}
	}
}

// RunHeadless builds the app and runs it without a window.
func RunHeadless(ctx context.Context, screen Screen, logger *slog.Logger, cfg HeadlessConfig, newApp func(HAL) (App, error)) error {
	r := NewHeadless(screen, logger, cfg)
	app, err := newApp(r.HAL())
	if err != nil {
		return err
	}
	return r.Run(ctx, app)
}

// InjectKeyboard pushes synthetic key events into a host keyboard.
type InjectKeyboard struct {
	k *hostKeyboard
}

func (in *InjectKeyboard) Press(code KeyCode)   { in.k.emit(KeyEvent{Code: code, Press: true}) }
func (in *InjectKeyboard) Release(code KeyCode) { in.k.emit(KeyEvent{Code: code, Press: false}) }

// Tap sends a press followed by a release.
func (in *InjectKeyboard) Tap(code KeyCode) {
	in.Press(code)
	in.Release(code)
}

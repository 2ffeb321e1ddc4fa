//go:build cgo

package hal

import (
	"errors"
	"log/slog"

	"ndengine/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	TPS   int
}

// RunWindow opens a desktop window that displays presented frames and
// forwards keyboard input. It blocks until the app stops or the window closes.
func RunWindow(screen Screen, logger *slog.Logger, cfg WindowConfig, newApp func(HAL) (App, error)) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "nd engine"
	}

	h := newHost(screen, logger)
	app, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, app: app}
	pw, ph := screen.PhysicalSize()
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(pw, ph)
	ebiten.SetFullscreen(screen.FullScreen)
	ebiten.SetTPS(cfg.TPS)

	h.logger.Info("window open", "width", pw, "height", ph, "fullscreen", screen.FullScreen)
	runErr := ebiten.RunGame(g)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	if err := app.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

type hostGame struct {
	h     *hostHAL
	app   App
	fbImg *ebiten.Image
	pix   []byte
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if err := g.app.Step(); err != nil {
		if errors.Is(err, ErrStopped) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.h.fb.size()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
	}

	g.h.fb.snapshot(g.pix)
	// The window has no transparency; show every pixel opaque.
	for i := 3; i < len(g.pix); i += 4 {
		g.pix[i] = 0xFF
	}
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.screen.PhysicalSize()
}

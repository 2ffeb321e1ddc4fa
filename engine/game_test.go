package engine

import (
	"errors"
	"log/slog"
	"testing"

	"ndengine/hal"
)

type fakeDisplay struct {
	frames int
	w, h   int
	first  uint32
}

func (d *fakeDisplay) Present(w, h int, pix []uint32) error {
	d.frames++
	d.w, d.h = w, h
	if len(pix) > 0 {
		d.first = pix[0]
	}
	return nil
}

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeInput struct{ k *fakeKeyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.k }

type fakeHAL struct {
	disp *fakeDisplay
	kbd  *fakeKeyboard
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{disp: &fakeDisplay{}, kbd: &fakeKeyboard{ch: make(chan hal.KeyEvent, 8)}}
}

func (h *fakeHAL) Logger() *slog.Logger { return nil }
func (h *fakeHAL) Screen() hal.Screen   { return hal.Screen{} }
func (h *fakeHAL) Display() hal.Display { return h.disp }
func (h *fakeHAL) Input() hal.Input     { return fakeInput{k: h.kbd} }

type recordingGame struct {
	BaseGame
	created   int
	updates   []float32
	destroyed int
	updateErr error
}

func (g *recordingGame) OnCreate(e *Engine) error {
	g.created++
	return e.ClearScreen(Blue)
}

func (g *recordingGame) OnUpdate(e *Engine, elapsed float32) error {
	g.updates = append(g.updates, elapsed)
	return g.updateErr
}

func (g *recordingGame) OnDestroy(*Engine) error {
	g.destroyed++
	return nil
}

func TestNewInvalidConfig(t *testing.T) {
	cases := []Config{
		{ScreenWidth: 0, ScreenHeight: 1, PixelWidth: 1, PixelHeight: 1},
		{ScreenWidth: 1, ScreenHeight: -1, PixelWidth: 1, PixelHeight: 1},
		{ScreenWidth: 1, ScreenHeight: 1, PixelWidth: 0, PixelHeight: 1},
		{ScreenWidth: 1, ScreenHeight: 1, PixelWidth: 1, PixelHeight: -2},
	}
	for _, cfg := range cases {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("New(%+v) err = %v, want ErrInvalidConfig", cfg, err)
		}
	}
}

func TestNewInstallsScreenTarget(t *testing.T) {
	e, err := New(Config{ScreenWidth: 32, ScreenHeight: 24, PixelWidth: 2, PixelHeight: 3, FullScreen: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.DrawTargetWidth() != 32 || e.DrawTargetHeight() != 24 {
		t.Fatalf("target = %dx%d, want 32x24", e.DrawTargetWidth(), e.DrawTargetHeight())
	}
	if e.PixelMode() != ModeNormal {
		t.Fatalf("PixelMode() = %s, want normal", e.PixelMode())
	}
	if s := e.Config().Screen(); s.PixelWidth != 2 || s.PixelHeight != 3 || !s.FullScreen {
		t.Fatalf("Screen() = %+v", s)
	}
}

func TestBaseGameIsNoop(t *testing.T) {
	var g Game = BaseGame{}
	e := newTestEngine(t, 2, 2)
	if err := g.OnCreate(e); err != nil {
		t.Fatalf("OnCreate: %v", err)
	}
	if err := g.OnUpdate(e, 1); err != nil {
		t.Fatalf("OnUpdate: %v", err)
	}
	if err := g.OnDestroy(e); err != nil {
		t.Fatalf("OnDestroy: %v", err)
	}
}

func TestStartStepClose(t *testing.T) {
	e := newTestEngine(t, 4, 4)
	h := newFakeHAL()
	g := &recordingGame{}

	if err := e.Step(); err == nil {
		t.Fatal("Step() before Start succeeded")
	}
	if err := e.Start(h, nil); !errors.Is(err, ErrNoGame) {
		t.Fatalf("Start(nil) err = %v, want ErrNoGame", err)
	}
	if err := e.Start(h, g); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if g.created != 1 {
		t.Fatalf("OnCreate called %d times, want 1", g.created)
	}

	for i := 0; i < 3; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if len(g.updates) != 3 {
		t.Fatalf("OnUpdate called %d times, want 3", len(g.updates))
	}
	if h.disp.frames != 3 || h.disp.w != 4 || h.disp.h != 4 {
		t.Fatalf("presented %d frames of %dx%d", h.disp.frames, h.disp.w, h.disp.h)
	}
	if Pixel(h.disp.first) != Blue {
		t.Fatalf("presented pixel = %s, want %s", Pixel(h.disp.first), Blue)
	}

	e.OnQuit()
	if err := e.Step(); !errors.Is(err, hal.ErrStopped) {
		t.Fatalf("Step() after OnQuit err = %v, want hal.ErrStopped", err)
	}
	if len(g.updates) != 3 {
		t.Fatalf("OnUpdate ran after quit")
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if g.destroyed != 1 {
		t.Fatalf("OnDestroy called %d times, want 1", g.destroyed)
	}
}

func TestStepUpdateError(t *testing.T) {
	e := newTestEngine(t, 2, 2)
	boom := errors.New("boom")
	g := &recordingGame{updateErr: boom}
	if err := e.Start(newFakeHAL(), g); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.Step(); !errors.Is(err, boom) {
		t.Fatalf("Step() err = %v, want boom", err)
	}
}

func TestKeyCallbacks(t *testing.T) {
	e := newTestEngine(t, 2, 2)
	h := newFakeHAL()

	var pressed, released int
	e.ConnectKeyPress(hal.KeyLeft, func() { pressed++ })
	e.ConnectKeyRelease(hal.KeyLeft, func() { released++ })
	e.ConnectKeyPress(hal.KeyEscape, e.OnQuit)

	if err := e.Start(h, &recordingGame{}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyLeft, Press: true}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyLeft, Press: false}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if pressed != 1 || released != 1 {
		t.Fatalf("pressed=%d released=%d, want 1 and 1", pressed, released)
	}

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if e.Running().Running() {
		t.Fatal("escape callback did not stop the run flag")
	}
	if err := e.Step(); !errors.Is(err, hal.ErrStopped) {
		t.Fatalf("Step() err = %v, want hal.ErrStopped", err)
	}
}

package engine

import (
	"errors"
	"math"
	"testing"
)

func TestDrawStringDrawsGlyphs(t *testing.T) {
	e := newTestEngine(t, 64, 32)
	if err := e.ClearScreen(Black); err != nil {
		t.Fatalf("ClearScreen: %v", err)
	}
	if err := e.DrawString(4, 4, "Hi", White, 1); err != nil {
		t.Fatalf("DrawString: %v", err)
	}
	small := countColor(e.DrawTarget(), White)
	if small == 0 {
		t.Fatal("DrawString drew nothing")
	}

	if err := e.ClearScreen(Black); err != nil {
		t.Fatalf("ClearScreen: %v", err)
	}
	if err := e.DrawString(4, 4, "Hi", White, 2); err != nil {
		t.Fatalf("DrawString: %v", err)
	}
	if big := countColor(e.DrawTarget(), White); big != 4*small {
		t.Fatalf("scale 2 drew %d pixels, want %d", big, 4*small)
	}
}

func TestDrawStringClipsOffscreen(t *testing.T) {
	e := newTestEngine(t, 8, 8)
	if err := e.DrawString(-3, 5, "WWWW", White, 3); err != nil {
		t.Fatalf("DrawString() err = %v, want nil", err)
	}
}

func TestDrawStringErrors(t *testing.T) {
	e := newTestEngine(t, 32, 16)
	e.SetPixelMode(ModeCustom)
	if err := e.DrawString(0, 0, "A", White, 1); !errors.Is(err, ErrModeNotImplemented) {
		t.Fatalf("DrawString() err = %v, want ErrModeNotImplemented", err)
	}
	e.TakeDrawTarget()
	if err := e.DrawString(0, 0, "A", White, 1); !errors.Is(err, ErrNoDrawTarget) {
		t.Fatalf("DrawString() err = %v, want ErrNoDrawTarget", err)
	}
}

func TestTextMetrics(t *testing.T) {
	if TextWidth("", 1) != 0 {
		t.Fatalf("TextWidth(\"\") = %d, want 0", TextWidth("", 1))
	}
	if w1, w2 := TextWidth("abc", 1), TextWidth("abc", 2); w1 <= 0 || w2 != 2*w1 {
		t.Fatalf("TextWidth = %d, %d", w1, w2)
	}
	if TextHeight(3) != 3*TextHeight(1) {
		t.Fatalf("TextHeight(3) = %d, want %d", TextHeight(3), 3*TextHeight(1))
	}
}

func TestTextDisplaySizeSaturates(t *testing.T) {
	e := newTestEngine(t, 4, 4)
	wide, err := NewSprite(40000, 1)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	if err := e.SetDrawTarget(wide); err != nil {
		t.Fatalf("SetDrawTarget: %v", err)
	}
	d := &textDisplay{e: e, scale: 1}
	if w, h := d.Size(); w != math.MaxInt16 || h != 1 {
		t.Fatalf("Size() = (%d, %d), want (%d, 1)", w, h, math.MaxInt16)
	}
}

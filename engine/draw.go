package engine

import "fmt"

// PixelMode selects how Draw combines a color with the draw target.
type PixelMode uint8

const (
	// ModeNormal overwrites the destination.
	ModeNormal PixelMode = iota
	// ModeAlpha interpolates by source alpha and the blend factor.
	ModeAlpha
	// ModeMask overwrites only with fully opaque sources.
	ModeMask
	// ModeCustom is reserved.
	ModeCustom
)

func (m PixelMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAlpha:
		return "alpha"
	case ModeMask:
		return "mask"
	case ModeCustom:
		return "custom"
	default:
		return fmt.Sprintf("PixelMode(%d)", uint8(m))
	}
}

func (e *Engine) SetPixelMode(m PixelMode) { e.mode = m }
func (e *Engine) PixelMode() PixelMode     { return e.mode }

// SetPixelBlend sets the global blend factor used by ModeAlpha. The factor
// is stored as given; the blended channels are clamped to [0, 255].
func (e *Engine) SetPixelBlend(f float32) { e.blend = f }

func (e *Engine) PixelBlend() float32 { return e.blend }

// Draw writes p at (x, y) on the draw target using the current pixel mode.
func (e *Engine) Draw(x, y int, p Pixel) error {
	if e.target == nil {
		return ErrNoDrawTarget
	}

	switch e.mode {
	case ModeNormal:
		return e.target.SetPixel(x, y, p)

	case ModeMask:
		// Translucent sources are dropped before the bounds test.
		if p.A() == 255 {
			return e.target.SetPixel(x, y, p)
		}
		return nil

	case ModeAlpha:
		dst := e.target.GetPixel(x, y)
		srcT := (float32(p.A()) / 255) * e.blend
		dstT := 1 - srcT
		r := mix(srcT, p.R(), dstT, dst.R())
		g := mix(srcT, p.G(), dstT, dst.G())
		b := mix(srcT, p.B(), dstT, dst.B())
		// Output alpha is the type default, not source or destination alpha.
		return e.target.SetPixel(x, y, RGB(r, g, b))

	case ModeCustom:
		return fmt.Errorf("%w: %s", ErrModeNotImplemented, e.mode)

	default:
		return fmt.Errorf("%w: %s", ErrModeUndefined, e.mode)
	}
}

// mix truncates toward zero.
func mix(srcT float32, src uint8, dstT float32, dst uint8) uint8 {
	v := srcT*float32(src) + dstT*float32(dst)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

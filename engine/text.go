package engine

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var textFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// textAscent is the distance from the top of a text line to its baseline.
var textAscent = func() int16 {
	info := textFont.GetGlyph('M').Info()
	if a := -int16(info.YOffset); a > 0 {
		return a
	}
	return int16(textFont.GetYAdvance())
}()

// TextWidth returns the advance width of s in target pixels at the given scale.
func TextWidth(s string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	_, outbox := tinyfont.LineWidth(textFont, s)
	return int(outbox) * scale
}

// TextHeight returns the line height in target pixels at the given scale.
func TextHeight(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return int(textFont.GetYAdvance()) * scale
}

// DrawString renders s with its top-left corner at (x, y). Each font pixel
// becomes a scale x scale block composited with Draw. Glyph pixels that fall
// outside the draw target are clipped.
func (e *Engine) DrawString(x, y int, s string, p Pixel, scale int) error {
	if e.target == nil {
		return ErrNoDrawTarget
	}
	if scale < 1 {
		scale = 1
	}
	d := &textDisplay{e: e, x: x, y: y, scale: scale}
	tinyfont.WriteLine(d, textFont, 0, textAscent, s, p.ToRGBA())
	return d.Display()
}

// textDisplay adapts the compositor to the font driver. Font coordinates
// are relative to the string origin and scaled on the way through.
type textDisplay struct {
	e     *Engine
	x, y  int
	scale int
	err   error
}

var _ drivers.Displayer = (*textDisplay)(nil)

func (d *textDisplay) Size() (x, y int16) {
	return saturateInt16(d.e.DrawTargetWidth()), saturateInt16(d.e.DrawTargetHeight())
}

func saturateInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

func (d *textDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.err != nil {
		return
	}
	p := PixelFromColor(color.NRGBA(c))
	x0 := d.x + int(x)*d.scale
	y0 := d.y + int(y)*d.scale
	for j := 0; j < d.scale; j++ {
		for i := 0; i < d.scale; i++ {
			if !d.e.target.inBounds(x0+i, y0+j) {
				continue
			}
			if err := d.e.Draw(x0+i, y0+j, p); err != nil {
				d.err = err
				return
			}
		}
	}
}

func (d *textDisplay) Display() error { return d.err }

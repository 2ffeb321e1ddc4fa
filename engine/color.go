package engine

import (
	"fmt"
	"image/color"
)

// DefaultAlpha is the alpha used when a constructor omits it.
const DefaultAlpha uint8 = 0xFF

// DefaultPixel is opaque black, the value of a freshly allocated sprite pixel.
const DefaultPixel = Pixel(uint32(DefaultAlpha) << 24)

// Pixel is a packed 32-bit RGBA color.
//
// Byte order from least to most significant is R, G, B, A, which makes a
// little-endian []uint32 of pixels byte-compatible with image.RGBA.Pix.
type Pixel uint32

// Pack combines four channels into the packed representation.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Unpack splits a packed value into its channels.
func Unpack(v uint32) (r, g, b, a uint8) {
	return uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)
}

// RGBA returns the pixel with the given channels.
func RGBA(r, g, b, a uint8) Pixel { return Pixel(Pack(r, g, b, a)) }

// RGB returns an opaque pixel.
func RGB(r, g, b uint8) Pixel { return Pixel(Pack(r, g, b, DefaultAlpha)) }

// PixelFromUint32 reinterprets a packed value as a pixel.
func PixelFromUint32(v uint32) Pixel { return Pixel(v) }

// PixelFromColor converts any color.Color through the non-premultiplied model.
func PixelFromColor(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

func (p Pixel) R() uint8 { return uint8(p) }
func (p Pixel) G() uint8 { return uint8(p >> 8) }
func (p Pixel) B() uint8 { return uint8(p >> 16) }
func (p Pixel) A() uint8 { return uint8(p >> 24) }

func (p Pixel) Uint32() uint32 { return uint32(p) }

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

// NRGBA returns the pixel as a non-premultiplied standard library color.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// ToRGBA copies the channels into a color.RGBA without premultiplying.
// Font drivers use color.RGBA as a plain channel carrier.
func (p Pixel) ToRGBA() color.RGBA {
	return color.RGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

func (p Pixel) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", p.R(), p.G(), p.B(), p.A())
}

// Palette.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
	Blank = RGBA(0, 0, 0, 0)

	Red         = RGB(255, 0, 0)
	DarkRed     = RGB(128, 0, 0)
	VeryDarkRed = RGB(64, 0, 0)

	Green         = RGB(0, 255, 0)
	LightGreen    = RGB(0, 180, 0)
	DarkGreen     = RGB(0, 128, 0)
	VeryDarkGreen = RGB(0, 64, 0)

	Blue         = RGB(0, 0, 255)
	DarkBlue     = RGB(0, 0, 128)
	VeryDarkBlue = RGB(0, 0, 64)

	Grey         = RGB(192, 192, 192)
	DarkGrey     = RGB(128, 128, 128)
	VeryDarkGrey = RGB(64, 64, 64)

	Yellow         = RGB(255, 255, 0)
	DarkYellow     = RGB(128, 128, 0)
	VeryDarkYellow = RGB(64, 64, 0)

	Cyan         = RGB(0, 255, 255)
	DarkCyan     = RGB(0, 128, 128)
	VeryDarkCyan = RGB(0, 64, 64)

	Magenta         = RGB(255, 0, 255)
	DarkMagenta     = RGB(128, 0, 128)
	VeryDarkMagenta = RGB(64, 0, 64)
)

package engine

import (
	"fmt"
	"image"
)

// Sprite is a fixed-size row-major grid of pixels.
//
// Reads outside the grid return Blank; writes outside it fail. Sprites are
// not safe for concurrent mutation.
type Sprite struct {
	width  int
	height int
	pixels []uint32
}

// NewSprite allocates a w x h sprite filled with DefaultPixel.
func NewSprite(w, h int) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	s := &Sprite{
		width:  w,
		height: h,
		pixels: make([]uint32, w*h),
	}
	s.Fill(DefaultPixel)
	return s, nil
}

func (s *Sprite) Width() int  { return s.width }
func (s *Sprite) Height() int { return s.height }

func (s *Sprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *Sprite) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// GetPixel returns the pixel at (x, y), or Blank when out of bounds.
func (s *Sprite) GetPixel(x, y int) Pixel {
	if !s.inBounds(x, y) {
		return Blank
	}
	return Pixel(s.pixels[y*s.width+x])
}

// SetPixel stores p at (x, y).
func (s *Sprite) SetPixel(x, y int, p Pixel) error {
	if !s.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, s.width, s.height)
	}
	s.pixels[y*s.width+x] = uint32(p)
	return nil
}

// Fill sets every pixel to p.
func (s *Sprite) Fill(p Pixel) {
	v := uint32(p)
	for i := range s.pixels {
		s.pixels[i] = v
	}
}

// Pixels returns the backing storage: exactly Width()*Height() packed
// pixels in row-major order. Writes through it skip bounds checks.
func (s *Sprite) Pixels() []uint32 {
	return s.pixels
}

package hal

import (
	"fmt"
	"image"
	"sync"
)

// hostFramebuffer keeps the last presented frame at physical resolution.
type hostFramebuffer struct {
	mu       sync.Mutex
	screen   Screen
	logical  *image.RGBA
	physical *image.RGBA
	frames   uint64
}

func newHostFramebuffer(screen Screen) *hostFramebuffer {
	pw, ph := screen.PhysicalSize()
	return &hostFramebuffer{
		screen:   screen,
		logical:  image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Height)),
		physical: image.NewRGBA(image.Rect(0, 0, pw, ph)),
	}
}

func (f *hostFramebuffer) Present(width, height int, pix []uint32) error {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return fmt.Errorf("present: %d pixels for %dx%d", len(pix), width, height)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if b := f.logical.Bounds(); b.Dx() != width || b.Dy() != height {
		f.logical = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	unpackRGBA(f.logical.Pix, pix)
	scaleFrame(f.physical, f.logical)
	f.frames++
	return nil
}

// snapshot copies the physical frame into dst, which must match its size.
func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.physical.Pix)
}

func (f *hostFramebuffer) size() (w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.physical.Bounds()
	return b.Dx(), b.Dy()
}

// lastFrame returns a copy of the physical frame and the number of frames
// presented so far.
func (f *hostFramebuffer) lastFrame() (*image.RGBA, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img := image.NewRGBA(f.physical.Bounds())
	copy(img.Pix, f.physical.Pix)
	return img, f.frames
}

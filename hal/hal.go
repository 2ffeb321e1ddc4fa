package hal

import (
	"errors"
	"log/slog"
)

// ErrNotImplemented is returned by backends missing on this build.
var ErrNotImplemented = errors.New("not implemented")

// ErrStopped is returned by App.Step once the app has finished. Runners treat
// it as a clean exit.
var ErrStopped = errors.New("stopped")

// Screen describes the logical framebuffer and its physical scale.
type Screen struct {
	Width       int
	Height      int
	PixelWidth  int
	PixelHeight int
	FullScreen  bool
}

// PhysicalSize returns the window size in device pixels.
func (s Screen) PhysicalSize() (w, h int) {
	pw, ph := s.PixelWidth, s.PixelHeight
	if pw <= 0 {
		pw = 1
	}
	if ph <= 0 {
		ph = 1
	}
	return s.Width * pw, s.Height * ph
}

// Display receives finished frames.
//
// pix holds exactly width*height packed pixels in row-major order without
// padding; byte 0 of each element is red, byte 3 is alpha. Present must not
// retain pix after it returns.
type Display interface {
	Present(width, height int, pix []uint32) error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyTab
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// KeyForRune maps a letter or space to its key code.
func KeyForRune(r rune) KeyCode {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A')
	case r == ' ':
		return KeySpace
	}
	return KeyUnknown
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events. Delivery is best-effort; events are dropped
// when the consumer falls behind.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the engine and the host.
type HAL interface {
	Logger() *slog.Logger
	Screen() Screen
	Display() Display
	Input() Input
}

// App is driven by a runner once per tick.
type App interface {
	// Step advances one frame. Returning ErrStopped ends the run cleanly.
	Step() error
	// Close releases the app. It is called once after the last Step,
	// including when the window is closed by the user.
	Close() error
}

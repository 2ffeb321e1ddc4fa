//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[ebiten.Key]KeyCode{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyBackspace:  KeyBackspace,
	ebiten.KeyTab:        KeyTab,
}

func init() {
	for i := ebiten.KeyA; i <= ebiten.KeyZ; i++ {
		ebitenKeys[i] = KeyA + KeyCode(i-ebiten.KeyA)
	}
}

// poll translates the keys that changed this tick into events.
func (k *hostKeyboard) poll() {
	for key, code := range ebitenKeys {
		if inpututil.IsKeyJustPressed(key) {
			k.emit(KeyEvent{Code: code, Press: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			k.emit(KeyEvent{Code: code, Press: false})
		}
	}
}

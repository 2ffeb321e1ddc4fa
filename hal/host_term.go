package hal

import (
	"errors"
	"os"
	"sync"

	"golang.org/x/term"
)

// termKeyboard reads stdin in raw mode and turns bytes into key taps.
type termKeyboard struct {
	kbd      *hostKeyboard
	fd       int
	oldState *term.State
	stopOnce sync.Once
}

func startTermKeyboard(kbd *hostKeyboard) (*termKeyboard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}
	// Raw mode disables echo and line buffering.
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	tk := &termKeyboard{kbd: kbd, fd: fd, oldState: oldState}
	go tk.read()
	return tk, nil
}

// read blocks on stdin for the life of the process; stop only restores the
// terminal.
func (tk *termKeyboard) read() {
	buf := make([]byte, 64)
	var pending []byte
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			var events []KeyEvent
			events, pending = decodeTermKeys(pending)
			for _, ev := range events {
				tk.kbd.emit(ev)
			}
		}
		if err != nil {
			return
		}
	}
}

func (tk *termKeyboard) stop() {
	tk.stopOnce.Do(func() {
		_ = term.Restore(tk.fd, tk.oldState)
	})
}

// decodeTermKeys converts terminal input into press/release pairs. An
// incomplete escape sequence at the end of buf is returned as rest.
func decodeTermKeys(buf []byte) (events []KeyEvent, rest []byte) {
	tap := func(code KeyCode, r rune) {
		events = append(events,
			KeyEvent{Code: code, Press: true, Rune: r},
			KeyEvent{Code: code, Press: false, Rune: r},
		)
	}

	for len(buf) > 0 {
		b := buf[0]
		switch {
		case b == 0x1b:
			if len(buf) == 1 {
				tap(KeyEscape, 0)
				return events, nil
			}
			if buf[1] != '[' {
				tap(KeyEscape, 0)
				buf = buf[1:]
				continue
			}
			if len(buf) < 3 {
				return events, buf
			}
			switch buf[2] {
			case 'A':
				tap(KeyUp, 0)
			case 'B':
				tap(KeyDown, 0)
			case 'C':
				tap(KeyRight, 0)
			case 'D':
				tap(KeyLeft, 0)
			}
			buf = buf[3:]
		case b == '\r' || b == '\n':
			tap(KeyEnter, 0)
			buf = buf[1:]
		case b == '\t':
			tap(KeyTab, 0)
			buf = buf[1:]
		case b == 0x7f || b == 0x08:
			tap(KeyBackspace, 0)
			buf = buf[1:]
		case b == 0x03:
			// Ctrl-C does not raise SIGINT in raw mode.
			tap(KeyEscape, 0)
			buf = buf[1:]
		default:
			if code := KeyForRune(rune(b)); code != KeyUnknown {
				tap(code, rune(b))
			}
			buf = buf[1:]
		}
	}
	return events, nil
}

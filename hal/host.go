package hal

import (
	"io"
	"log/slog"
)

type hostHAL struct {
	logger *slog.Logger
	screen Screen
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL for the given screen. A nil logger discards output.
func New(screen Screen, logger *slog.Logger) HAL {
	return newHost(screen, logger)
}

func newHost(screen Screen, logger *slog.Logger) *hostHAL {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &hostHAL{
		logger: logger,
		screen: screen,
		fb:     newHostFramebuffer(screen),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Screen() Screen       { return h.screen }
func (h *hostHAL) Display() Display     { return h.fb }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd} }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

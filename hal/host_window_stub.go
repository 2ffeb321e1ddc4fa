//go:build !cgo

package hal

import (
	"fmt"
	"log/slog"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	TPS   int
}

func RunWindow(_ Screen, _ *slog.Logger, _ WindowConfig, _ func(HAL) (App, error)) error {
	return fmt.Errorf("window mode requires cgo: %w", ErrNotImplemented)
}

package engine

import "errors"

var (
	// ErrInvalidConfig reports non-positive engine construct parameters.
	ErrInvalidConfig = errors.New("engine: invalid construct parameters")
	// ErrInvalidSize reports non-positive sprite dimensions.
	ErrInvalidSize = errors.New("engine: invalid sprite size")
	// ErrOutOfBounds reports a strict pixel write outside the sprite.
	ErrOutOfBounds = errors.New("engine: pixel out of xy bound")
	// ErrNoDrawTarget reports drawing without a target or installing a nil one.
	ErrNoDrawTarget = errors.New("engine: draw target is nil")
	// ErrModeNotImplemented is returned for ModeCustom.
	ErrModeNotImplemented = errors.New("engine: pixel mode not implemented")
	// ErrModeUndefined is returned for a mode outside the known set.
	ErrModeUndefined = errors.New("engine: pixel mode undefined")
	// ErrNoGame is returned by Start for a nil game.
	ErrNoGame = errors.New("engine: game is nil")
)

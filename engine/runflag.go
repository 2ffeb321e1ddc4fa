package engine

import "sync/atomic"

// RunFlag is the process-wide "keep running" switch.
//
// It starts true. Any goroutine may call Stop; the frame loop polls Running
// once per iteration and never interrupts a draw call in progress. Once
// stopped a flag is not restarted.
type RunFlag struct {
	v atomic.Bool
}

func NewRunFlag() *RunFlag {
	f := &RunFlag{}
	f.v.Store(true)
	return f
}

func (f *RunFlag) Stop()         { f.v.Store(false) }
func (f *RunFlag) Running() bool { return f.v.Load() }

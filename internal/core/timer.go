package core

import (
	"context"
	"time"
)

// Pacer spaces out generations by a fixed pause.
type Pacer struct {
	pause time.Duration
}

// NewPacer constructs a Pacer that waits pause between generations.
func NewPacer(pause time.Duration) *Pacer {
	p := &Pacer{}
	p.SetPause(pause)
	return p
}

// SetPause changes the pause. Negative values are treated as zero.
func (p *Pacer) SetPause(pause time.Duration) {
	if pause < 0 {
		pause = 0
	}
	p.pause = pause
}

// Pause returns the configured pause.
func (p *Pacer) Pause() time.Duration { return p.pause }

// Wait blocks for the configured pause or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.pause == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

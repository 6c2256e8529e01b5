package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPacerWaitsForPause(t *testing.T) {
	p := NewPacer(20 * time.Millisecond)
	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("Wait returned after %s", elapsed)
	}
}

func TestPacerStopsOnCancel(t *testing.T) {
	p := NewPacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait err=%v, want context.Canceled", err)
	}
}

func TestPacerClampsNegativePause(t *testing.T) {
	p := NewPacer(-time.Second)
	if p.Pause() != 0 {
		t.Fatalf("Pause()=%s, want 0", p.Pause())
	}
}

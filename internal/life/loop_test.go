package life

import (
	"context"
	"errors"
	"testing"

	"agelife/internal/core"
)

type frame struct {
	generation int
	ages       []int
}

type recorder struct {
	rows, cols int
	cur        []int
	frames     []frame
}

func (r *recorder) SetDimensions(rows, cols int) {
	r.rows, r.cols = rows, cols
	r.cur = make([]int, rows*cols)
}

func (r *recorder) DrawCellAt(row, col, age int) { r.cur[row*r.cols+col] = age }

func (r *recorder) Present(generation int) {
	r.frames = append(r.frames, frame{generation: generation, ages: append([]int(nil), r.cur...)})
}

type scriptedEvents struct {
	polls  []core.Event
	awaits []core.Event
}

func (s *scriptedEvents) Poll() core.Event {
	if len(s.polls) == 0 {
		return core.EventNone
	}
	ev := s.polls[0]
	s.polls = s.polls[1:]
	return ev
}

func (s *scriptedEvents) Await(ctx context.Context) (core.Event, error) {
	if len(s.awaits) == 0 {
		return core.EventCancel, nil
	}
	ev := s.awaits[0]
	s.awaits = s.awaits[1:]
	return ev, nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxAge = 3
	cfg.PauseFast = 0
	return cfg
}

func TestLoopStopsOnAllDeadGrid(t *testing.T) {
	g, _ := core.NewGrid(4, 4)
	rec := &recorder{}
	rec.SetDimensions(4, 4)
	var notes []string
	loop := &Loop{
		Config:   testConfig(),
		Speed:    SpeedFast,
		Renderer: rec,
		Notify:   func(msg string) { notes = append(notes, msg) },
	}
	res, err := loop.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateStable || res.Generations != 0 {
		t.Fatalf("result %+v, want stable after 0 generations", res)
	}
	if len(notes) != 1 || notes[0] != StableMessage {
		t.Fatalf("notifications %v", notes)
	}
	if len(rec.frames) != 1 {
		t.Fatalf("got %d frames, want the final render only", len(rec.frames))
	}
}

func TestLoopRunsBlockToStability(t *testing.T) {
	g := gridOf(t, [][]int{
		{1, 1},
		{1, 1},
	})
	rec := &recorder{}
	rec.SetDimensions(2, 2)
	loop := &Loop{Config: testConfig(), Speed: SpeedFast, Renderer: rec}
	res, err := loop.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateStable || res.Generations != 1 {
		t.Fatalf("result %+v, want stable after 1 generation", res)
	}
	expectAges(t, res.Final, [][]int{{2, 2}, {2, 2}})
	if len(rec.frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(rec.frames))
	}
	if rec.frames[0].generation != 1 || rec.frames[1].generation != 1 {
		t.Fatalf("frame generations %d,%d", rec.frames[0].generation, rec.frames[1].generation)
	}
	if age, _ := g.Get(0, 0); age != 1 {
		t.Fatalf("initial grid mutated to age %d", age)
	}
}

func TestLoopCancelledByPoll(t *testing.T) {
	blinker := gridOf(t, [][]int{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
	events := &scriptedEvents{polls: []core.Event{core.EventNone, core.EventNone, core.EventCancel}}
	loop := &Loop{Config: testConfig(), Speed: SpeedFast, Events: events}
	res, err := loop.Run(context.Background(), blinker)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateCancelled || res.Generations != 3 {
		t.Fatalf("result %+v, want cancelled after 3 generations", res)
	}
}

func TestLoopManualAdvanceAndQuit(t *testing.T) {
	blinker := gridOf(t, [][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	events := &scriptedEvents{
		polls:  []core.Event{core.EventCancel},
		awaits: []core.Event{core.EventAdvance, core.EventAdvance, core.EventCancel},
	}
	loop := &Loop{Config: testConfig(), Speed: SpeedManual, Events: events}
	res, err := loop.Run(context.Background(), blinker)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateCancelled || res.Generations != 3 {
		t.Fatalf("result %+v, want cancelled after 3 generations", res)
	}
	if len(events.polls) != 1 {
		t.Fatal("manual mode must not poll for pointer events")
	}
}

func TestLoopHonoursContext(t *testing.T) {
	blinker := gridOf(t, [][]int{{0, 0, 0}, {1, 1, 1}, {0, 0, 0}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loop := &Loop{Config: testConfig(), Speed: SpeedSlow}
	res, err := loop.Run(ctx, blinker)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if res.State != StateCancelled || res.Generations != 0 {
		t.Fatalf("result %+v", res)
	}
}

func TestLoopRejectsUnknownSpeed(t *testing.T) {
	g, _ := core.NewGrid(1, 1)
	loop := &Loop{Config: testConfig(), Speed: Speed(9)}
	if _, err := loop.Run(context.Background(), g); err == nil {
		t.Fatal("expected error for unknown speed")
	}
}

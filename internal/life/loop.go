package life

import (
	"context"
	"fmt"

	"agelife/internal/core"
)

// State is the simulation loop state.
type State int

const (
	StateRunning State = iota
	StateStable
	StateCancelled
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStable:
		return "stable"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// StableMessage is the notification emitted when the heuristic fires.
const StableMessage = "Stable Configuration"

// Result summarises a finished run.
type Result struct {
	State State
	// Generations counts the candidates that replaced the current grid.
	Generations int
	Final       *core.Grid
}

// Loop advances a grid generation by generation until it is stable or the
// environment cancels.
type Loop struct {
	Config   Config
	Speed    Speed
	Renderer core.Renderer
	Events   core.EventSource
	// Notify receives StableMessage. Optional.
	Notify func(msg string)
}

// Run takes ownership of grid and drives it to a terminal state. A done
// context ends the run as cancelled and its error is returned.
func (l *Loop) Run(ctx context.Context, grid *core.Grid) (Result, error) {
	if !l.Speed.Valid() {
		return Result{State: StateCancelled, Final: grid}, fmt.Errorf("unknown speed %d", l.Speed)
	}
	events := l.Events
	if events == nil {
		events = core.NoEvents{}
	}
	pacer := core.NewPacer(l.Config.Pause(l.Speed))

	current := grid
	generation := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result{State: StateCancelled, Generations: generation, Final: current}, err
		}

		candidate := NextGeneration(current)
		if IsStable(current, candidate, l.Config.MaxAge) {
			if l.Notify != nil {
				l.Notify(StableMessage)
			}
			Draw(l.Renderer, current, generation)
			return Result{State: StateStable, Generations: generation, Final: current}, nil
		}

		current = candidate
		generation++
		Draw(l.Renderer, current, generation)

		if l.Speed == SpeedManual {
			ev, err := events.Await(ctx)
			if err != nil || ev == core.EventCancel {
				return Result{State: StateCancelled, Generations: generation, Final: current}, err
			}
			continue
		}
		if events.Poll() == core.EventCancel {
			return Result{State: StateCancelled, Generations: generation, Final: current}, nil
		}
		if err := pacer.Wait(ctx); err != nil {
			return Result{State: StateCancelled, Generations: generation, Final: current}, err
		}
	}
}

// Draw redraws every cell of g and presents the frame when r batches frames.
func Draw(r core.Renderer, g *core.Grid, generation int) {
	if r == nil {
		return
	}
	cells := g.Cells()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			r.DrawCellAt(row, col, cells[g.Index(row, col)])
		}
	}
	if p, ok := r.(core.Presenter); ok {
		p.Present(generation)
	}
}

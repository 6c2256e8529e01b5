package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"agelife/internal/console"
	"agelife/internal/core"
	"agelife/internal/life"
	"agelife/internal/lifefile"
)

type notifier interface {
	Notify(msg string)
}

// Session runs simulations one after another until the user declines to
// start another.
type Session struct {
	cfg      life.Config
	prompt   *console.Prompter
	frontend Frontend
	rng      *core.RNG

	// interrupt derives the context of a single run. Cancelling it stops
	// that run only and the session moves on to the restart prompt.
	interrupt func(context.Context) (context.Context, context.CancelFunc)
}

// NewSession wires a session together.
func NewSession(cfg life.Config, prompt *console.Prompter, frontend Frontend, rng *core.RNG) *Session {
	return &Session{cfg: cfg, prompt: prompt, frontend: frontend, rng: rng, interrupt: onInterrupt}
}

// onInterrupt cancels a run on the first interrupt and then restores the
// default handler, so an interrupt at a prompt ends the process.
func onInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

// Run greets the user and loops over simulations.
func (s *Session) Run(ctx context.Context) error {
	if err := s.prompt.Welcome(); err != nil {
		return err
	}
	for {
		if err := s.runOnce(ctx); err != nil {
			if !badColony(err) {
				return err
			}
			s.prompt.Printf("Could not load the colony: %v\n", err)
		}
		again, err := s.prompt.YesNo("\nWould you like to run another simulation? (yes/no) ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) runOnce(ctx context.Context) error {
	grid, err := s.initialize()
	if err != nil {
		return err
	}
	speed, err := s.prompt.Speed()
	if err != nil {
		return err
	}
	if speed != life.SpeedManual {
		s.prompt.Printf("\n%s\n", s.frontend.Hint())
	}

	surface, err := s.frontend.Open(grid.Rows(), grid.Cols(), speed)
	if err != nil {
		return fmt.Errorf("opening display: %w", err)
	}
	surface.SetDimensions(grid.Rows(), grid.Cols())
	life.Draw(surface, grid, 0)

	loop := &life.Loop{
		Config:   s.cfg,
		Speed:    speed,
		Renderer: surface,
		Events:   surface,
		Notify:   s.notify(surface),
	}
	runCtx, stop := s.interrupt(ctx)
	res, runErr := loop.Run(runCtx, grid)
	stop()
	if runErr != nil && ctx.Err() == nil && res.State == life.StateCancelled && runCtx.Err() != nil {
		runErr = nil
	}
	closeErr := surface.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("closing display: %w", closeErr)
	}
	s.report(res)
	return nil
}

func (s *Session) initialize() (*core.Grid, error) {
	s.prompt.Printf("\nYou can start your colony with random cells or read from a prepared file.\n")
	fromFile, err := s.prompt.YesNo("Do you have a starting file in mind? (yes/no) ")
	if err != nil {
		return nil, err
	}
	if !fromFile {
		s.prompt.Printf("Okay, I will seed your colony randomly\n")
		return life.Randomize(s.cfg.Rows, s.cfg.Cols, s.cfg.Cells, s.rng)
	}

	var desc lifefile.Description
	opts := lifefile.OptionsFrom(s.cfg)
	name, err := s.prompt.Open(func(name string) error {
		d, err := lifefile.Load(name, opts)
		desc = d
		return err
	})
	if err != nil {
		return nil, err
	}
	s.prompt.Printf("Opened file named %s.\n", name)
	return desc.Grid()
}

func (s *Session) notify(surface Surface) func(string) {
	return func(msg string) {
		if n, ok := surface.(notifier); ok {
			n.Notify(msg)
			return
		}
		s.prompt.Printf("%s\n", msg)
	}
}

func (s *Session) report(res life.Result) {
	switch res.State {
	case life.StateStable:
		s.prompt.Printf("Stable configuration reached after %d generations.\n", res.Generations)
	default:
		s.prompt.Printf("Simulation stopped after %d generations.\n", res.Generations)
	}
}

func badColony(err error) bool {
	return errors.Is(err, core.ErrMalformedDescription) || errors.Is(err, core.ErrInvalidDimension)
}

// PrintParameters writes a parameter snapshot as an indented list.
func PrintParameters(w io.Writer, snap core.ParameterSnapshot) {
	for _, group := range snap.Groups {
		fmt.Fprintf(w, "%s\n", group.Name)
		for _, p := range group.Params {
			fmt.Fprintf(w, "\t%-16s %s\n", p.Key, p.Value)
		}
	}
}

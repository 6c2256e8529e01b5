package app

import (
	"context"
	"errors"
	"sort"

	"github.com/gdamore/tcell/v2"

	"agelife/internal/console"
	"agelife/internal/core"
	"agelife/internal/life"
	"agelife/internal/render"
)

// ErrWindowClosed is returned when the GUI window closes mid-session.
var ErrWindowClosed = errors.New("window closed")

// Surface is an open display for one simulation run.
type Surface interface {
	core.Renderer
	core.EventSource
	Close() error
}

// Frontend hosts a session and opens a surface for every simulation it runs.
type Frontend interface {
	// Host runs the session. Frontends that own the main thread run it on
	// another goroutine.
	Host(ctx context.Context, run func(context.Context) error) error
	Open(rows, cols int, speed life.Speed) (Surface, error)
	// Hint tells the user how to end a timed simulation early.
	Hint() string
}

// Env carries what a frontend needs to construct itself.
type Env struct {
	Config   *Config
	Life     life.Config
	Prompter *console.Prompter
}

// Factory constructs a Frontend.
type Factory func(env Env) Frontend

var frontends = map[string]Factory{}

// Register adds a frontend factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	frontends[name] = f
}

// Frontends exposes the registry of available frontends.
func Frontends() map[string]Factory {
	return frontends
}

// FrontendNames lists the registered frontends in order.
func FrontendNames() []string {
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("text", func(env Env) Frontend { return &textFrontend{env: env} })
	Register("tui", func(env Env) Frontend { return &tuiFrontend{env: env, newScreen: tcell.NewScreen} })
}

// textFrontend prints generations to the prompt output and reads manual
// continues from the prompt input.
type textFrontend struct {
	env Env
}

func (f *textFrontend) Host(ctx context.Context, run func(context.Context) error) error {
	return run(ctx)
}

func (f *textFrontend) Open(rows, cols int, speed life.Speed) (Surface, error) {
	r := render.NewText(f.env.Prompter.Out(), f.env.Life.Empty, f.env.Life.MaxAge)
	return textSurface{Text: r, events: f.env.Prompter}, nil
}

func (f *textFrontend) Hint() string { return "Press Ctrl+C to end the simulation." }

type textSurface struct {
	*render.Text
	events core.EventSource
}

func (s textSurface) Poll() core.Event { return s.events.Poll() }

func (s textSurface) Await(ctx context.Context) (core.Event, error) { return s.events.Await(ctx) }

func (textSurface) Close() error { return nil }

// tuiFrontend takes over the terminal with tcell for the duration of each
// simulation; prompts run on the restored terminal in between.
type tuiFrontend struct {
	env       Env
	newScreen func() (tcell.Screen, error)
}

func (f *tuiFrontend) Host(ctx context.Context, run func(context.Context) error) error {
	return run(ctx)
}

func (f *tuiFrontend) Open(rows, cols int, speed life.Speed) (Surface, error) {
	screen, err := f.newScreen()
	if err != nil {
		return nil, err
	}
	term, err := render.NewTerminal(screen, f.env.Life.MaxAge, f.env.Life.StopWord)
	if err != nil {
		return nil, err
	}
	return term, nil
}

func (f *tuiFrontend) Hint() string {
	return "Click on the grid or press Esc to end the simulation."
}

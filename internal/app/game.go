//go:build ebiten

package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"agelife/internal/core"
	"agelife/internal/life"
	"agelife/internal/render"
	"agelife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts the frames of a running session to the ebiten.Game interface.
// The session goroutine writes frames; ebiten reads them on the main thread.
type Game struct {
	mu         sync.Mutex
	rows, cols int
	back       []int
	front      []int
	generation int
	message    string

	painter *render.GridPainter
	hud     *ui.HUD
	maxAge  int
	scale   int

	clicked atomic.Bool
	done    atomic.Bool
}

// NewGame constructs a Game with no grid yet.
func NewGame(cfg life.Config, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		hud:    ui.NewHUD(cfg.Parameters(), hudWidth),
		maxAge: cfg.MaxAge,
		scale:  scale,
	}
}

// Update handles input and stops the game once the session is over.
func (g *Game) Update() error {
	if g.done.Load() {
		return ebiten.Termination
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.clicked.Store(true)
	}
	return nil
}

// Draw renders the latest presented frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	rows, cols := g.rows, g.cols
	ages := append([]int(nil), g.front...)
	status := ui.Status{Generation: g.generation, Message: g.message}
	g.mu.Unlock()

	if rows == 0 || cols == 0 {
		return
	}
	if g.painter == nil {
		g.painter = render.NewGridPainter(rows, cols, g.maxAge)
	} else if pr, pc := g.painter.Size(); pr != rows || pc != cols {
		g.painter = render.NewGridPainter(rows, cols, g.maxAge)
	}
	for _, age := range ages {
		if age > 0 {
			status.Live++
		}
	}
	g.painter.Blit(screen, ages, g.scale)
	g.hud.SetStatus(status)
	g.hud.Draw(screen, cols*g.scale, rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return max(g.cols*g.scale, 1) + g.hud.Width(), max(g.rows*g.scale, 1)
}

func (g *Game) finish() { g.done.Store(true) }

// guiSurface feeds one simulation into the Game. Manual continues are read
// from the console, pointer clicks end timed runs.
type guiSurface struct {
	game   *Game
	manual core.EventSource
}

func (s *guiSurface) SetDimensions(rows, cols int) {
	g := s.game
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rows, g.cols = rows, cols
	g.back = make([]int, rows*cols)
	g.front = make([]int, rows*cols)
	g.generation = 0
	g.message = ""
	g.clicked.Store(false)
}

func (s *guiSurface) DrawCellAt(row, col, age int) {
	g := s.game
	g.mu.Lock()
	defer g.mu.Unlock()
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.back[row*g.cols+col] = age
}

func (s *guiSurface) Present(generation int) {
	g := s.game
	g.mu.Lock()
	defer g.mu.Unlock()
	copy(g.front, g.back)
	g.generation = generation
}

func (s *guiSurface) Notify(msg string) {
	g := s.game
	g.mu.Lock()
	defer g.mu.Unlock()
	g.message = msg
}

func (s *guiSurface) Poll() core.Event {
	if s.game.clicked.Swap(false) {
		return core.EventCancel
	}
	return core.EventNone
}

func (s *guiSurface) Await(ctx context.Context) (core.Event, error) {
	return s.manual.Await(ctx)
}

func (s *guiSurface) Close() error { return nil }

type guiFrontend struct {
	env  Env
	game *Game
}

func (f *guiFrontend) Host(ctx context.Context, run func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer f.game.finish()
		return run(ctx)
	})

	scale := f.game.scale
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(f.env.Life.Cols*scale+hudWidth, f.env.Life.Rows*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(f.game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if !f.game.done.Load() {
		return ErrWindowClosed
	}
	return g.Wait()
}

func (f *guiFrontend) Open(rows, cols int, speed life.Speed) (Surface, error) {
	scale := f.game.scale
	ebiten.SetWindowSize(cols*scale+hudWidth, rows*scale)
	return &guiSurface{game: f.game, manual: f.env.Prompter}, nil
}

func (f *guiFrontend) Hint() string {
	return "Click and hold the mouse button on the graphics window to end the simulation."
}

func init() {
	Register("gui", func(env Env) Frontend {
		return &guiFrontend{env: env, game: NewGame(env.Life, env.Config.Scale)}
	})
}

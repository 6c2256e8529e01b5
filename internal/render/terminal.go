package render

import (
	"context"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"agelife/internal/core"
)

// Terminal draws the grid on a tcell screen and turns screen input into
// simulation events: a click, Esc or q cancels a timed run, while manual
// runs read a line typed on the status row.
type Terminal struct {
	screen   tcell.Screen
	palette  []color.RGBA
	stopWord string

	rows, cols int
	generation int
	status     string
	line       []rune

	events chan tcell.Event
	quit   chan struct{}
	pump   errgroup.Group
}

// NewTerminal initialises screen and starts forwarding its events.
func NewTerminal(screen tcell.Screen, maxAge int, stopWord string) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	t := &Terminal{
		screen:   screen,
		palette:  AgePalette(maxAge),
		stopWord: stopWord,
		events:   make(chan tcell.Event, 16),
		quit:     make(chan struct{}),
		status:   "Click, press Esc or q to end the simulation.",
	}
	t.pump.Go(func() error {
		screen.ChannelEvents(t.events, t.quit)
		return nil
	})
	return t, nil
}

// SetDimensions records the grid size. Each cell is two columns wide.
func (t *Terminal) SetDimensions(rows, cols int) {
	t.rows, t.cols = rows, cols
	t.screen.Clear()
}

// DrawCellAt paints one cell with its age color.
func (t *Terminal) DrawCellAt(row, col, age int) {
	c := ColorFor(t.palette, age)
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	t.screen.SetContent(col*2, row, ' ', nil, style)
	t.screen.SetContent(col*2+1, row, ' ', nil, style)
}

// Present draws the status rows and shows the frame.
func (t *Terminal) Present(generation int) {
	t.generation = generation
	t.drawStatus()
	t.screen.Show()
}

// Notify replaces the status message.
func (t *Terminal) Notify(msg string) {
	t.status = msg
	t.drawStatus()
	t.screen.Show()
}

// Poll drains pending screen events and reports whether any asks to cancel.
func (t *Terminal) Poll() core.Event {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return core.EventCancel
			}
			if t.cancels(ev) {
				return core.EventCancel
			}
		default:
			return core.EventNone
		}
	}
}

// Await collects a line typed on the status row. Enter submits it: the stop
// word cancels, anything else advances. Esc cancels immediately.
func (t *Terminal) Await(ctx context.Context) (core.Event, error) {
	t.line = t.line[:0]
	t.status = fmt.Sprintf("Hit [enter] to continue (or %q to end the simulation): ", t.stopWord)
	t.drawStatus()
	t.screen.Show()
	for {
		select {
		case <-ctx.Done():
			return core.EventCancel, ctx.Err()
		case ev, ok := <-t.events:
			if !ok {
				return core.EventCancel, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEnter:
					if string(t.line) == t.stopWord {
						return core.EventCancel, nil
					}
					return core.EventAdvance, nil
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return core.EventCancel, nil
				case tcell.KeyBackspace, tcell.KeyBackspace2:
					if len(t.line) > 0 {
						t.line = t.line[:len(t.line)-1]
					}
				case tcell.KeyRune:
					t.line = append(t.line, ev.Rune())
				}
				t.drawStatus()
				t.screen.Show()
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	close(t.quit)
	t.screen.Fini()
	return t.pump.Wait()
}

func (t *Terminal) cancels(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) drawStatus() {
	width := t.cols * 2
	if w, _ := t.screen.Size(); w > width {
		width = w
	}
	t.drawText(t.rows, width, fmt.Sprintf("Generation %d", t.generation))
	t.drawText(t.rows+1, width, t.status+string(t.line))
}

func (t *Terminal) drawText(y, width int, s string) {
	x := 0
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

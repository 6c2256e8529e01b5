package core

import "context"

// Renderer is the drawing surface a simulation reports to.
type Renderer interface {
	SetDimensions(rows, cols int)
	DrawCellAt(row, col, age int)
}

// Presenter is implemented by renderers that batch cell draws into frames.
// Present is called once all cells of a generation have been drawn.
type Presenter interface {
	Present(generation int)
}

// Event is a signal delivered by the environment between generations.
type Event int

const (
	// EventNone means nothing happened; the simulation proceeds.
	EventNone Event = iota
	// EventAdvance asks for the next generation in manual mode.
	EventAdvance
	// EventCancel asks the simulation to stop.
	EventCancel
)

// String returns a readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventAdvance:
		return "advance"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// EventSource delivers environment signals to the simulation loop.
type EventSource interface {
	// Poll reports a pending event without blocking.
	Poll() Event
	// Await blocks until the environment asks to advance or cancel.
	Await(ctx context.Context) (Event, error)
}

// NoEvents is an EventSource that never cancels and always advances.
type NoEvents struct{}

// Poll always reports EventNone.
func (NoEvents) Poll() Event { return EventNone }

// Await returns EventAdvance immediately unless ctx is done.
func (NoEvents) Await(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return EventCancel, err
	}
	return EventAdvance, nil
}

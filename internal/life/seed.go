package life

import (
	"fmt"

	"agelife/internal/core"
)

// Randomize returns a rows x cols grid with exactly count living cells of
// age 1 at distinct random positions.
func Randomize(rows, cols, count int, rng *core.RNG) (*core.Grid, error) {
	// NewGrid rejects boards whose size overflows, so rows*cols is safe below.
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if count < 0 || count > rows*cols {
		return nil, fmt.Errorf("%w: cannot place %d cells on a %dx%d board", core.ErrInvalidDimension, count, rows, cols)
	}
	cells := g.Cells()
	placed := 0
	for placed < count {
		idx := g.Index(rng.IntN(rows), rng.IntN(cols))
		if cells[idx] != 0 {
			continue
		}
		cells[idx] = 1
		placed++
	}
	return g, nil
}

// FromDescription builds a grid from already extracted dimensions and rows.
// The empty marker denotes a dead cell and any other rune a living cell of
// age 1. Runes past cols are ignored.
func FromDescription(rows, cols int, lines []string, empty rune) (*core.Grid, error) {
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(lines) < rows {
		return nil, fmt.Errorf("%w: %d rows declared, %d present", core.ErrMalformedDescription, rows, len(lines))
	}
	cells := g.Cells()
	for row := 0; row < rows; row++ {
		runes := []rune(lines[row])
		if len(runes) < cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", core.ErrMalformedDescription, row, len(runes), cols)
		}
		for col := 0; col < cols; col++ {
			if runes[col] != empty {
				cells[g.Index(row, col)] = 1
			}
		}
	}
	return g, nil
}

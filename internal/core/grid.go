package core

import "fmt"

// Grid stores a 2D grid of cell ages in row-major order. Age 0 is a dead
// cell; any positive age is the number of generations the cell has lived.
type Grid struct {
	rows, cols int
	data       []int
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(rows, cols); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize discards the current contents and reallocates a zeroed grid.
func (g *Grid) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 || (rows != 0 && rows*cols/rows != cols) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	g.rows, g.cols = rows, cols
	g.data = make([]int, rows*cols)
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the age stored at (row, col).
func (g *Grid) Get(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, g.outOfBounds(row, col)
	}
	return g.data[g.Index(row, col)], nil
}

// Set stores age at (row, col).
func (g *Grid) Set(row, col, age int) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	if age < 0 {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidAge, age, row, col)
	}
	g.data[g.Index(row, col)] = age
	return nil
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Blank returns a zeroed grid with the same dimensions.
func (g *Grid) Blank() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: make([]int, len(g.data))}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := g.Blank()
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and ages.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, age := range g.data {
		if other.data[i] != age {
			return false
		}
	}
	return true
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
}

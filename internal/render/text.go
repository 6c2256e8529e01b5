package render

import (
	"bufio"
	"fmt"
	"io"
)

// Text prints each generation as rows of characters. Dead cells use the
// empty marker of the grid file format.
type Text struct {
	w          *bufio.Writer
	empty      rune
	young, old rune
	maxAge     int

	rows, cols int
	ages       []int
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer, empty rune, maxAge int) *Text {
	t := &Text{w: bufio.NewWriter(w), empty: empty, young: 'o', old: 'O', maxAge: maxAge}
	if empty == t.young || empty == t.old {
		t.young, t.old = 'x', 'X'
	}
	return t
}

// SetDimensions sizes the frame buffer.
func (t *Text) SetDimensions(rows, cols int) {
	t.rows, t.cols = rows, cols
	t.ages = make([]int, rows*cols)
}

// DrawCellAt records the age of one cell for the next frame.
func (t *Text) DrawCellAt(row, col, age int) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return
	}
	t.ages[row*t.cols+col] = age
}

// Present writes the buffered frame.
func (t *Text) Present(generation int) {
	fmt.Fprintf(t.w, "\nGeneration %d\n", generation)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			t.w.WriteRune(t.glyph(t.ages[row*t.cols+col]))
		}
		t.w.WriteByte('\n')
	}
	t.w.Flush()
}

func (t *Text) glyph(age int) rune {
	switch {
	case age <= 0:
		return t.empty
	case age < t.maxAge:
		return t.young
	default:
		return t.old
	}
}

package render

import (
	"bytes"
	"testing"
)

func TestTextFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, '-', 3)
	r.SetDimensions(2, 3)
	r.DrawCellAt(0, 0, 1)
	r.DrawCellAt(0, 2, 3)
	r.DrawCellAt(1, 1, 7)
	r.DrawCellAt(5, 5, 1)
	r.Present(4)

	want := "\nGeneration 4\no-O\n-O-\n"
	if buf.String() != want {
		t.Fatalf("frame = %q, want %q", buf.String(), want)
	}
}

func TestTextLiveGlyphsDifferFromEmptyMarker(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, 'o', 3)
	r.SetDimensions(1, 3)
	r.DrawCellAt(0, 1, 1)
	r.DrawCellAt(0, 2, 5)
	r.Present(0)

	want := "\nGeneration 0\noxX\n"
	if buf.String() != want {
		t.Fatalf("frame = %q, want %q", buf.String(), want)
	}
}

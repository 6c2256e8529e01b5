// Package lifefile reads the line-oriented grid description format:
//
//	# comment lines may appear anywhere
//	2
//	3
//	-x-
//	x--
//
// After comments are removed the first line holds the row count, the second
// the column count and the rest are the grid rows.
package lifefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"agelife/internal/core"
	"agelife/internal/life"
)

// Options controls the markers recognised by the parser.
type Options struct {
	Comment rune
	Empty   rune
}

// OptionsFrom extracts the file markers from a simulation config.
func OptionsFrom(cfg life.Config) Options {
	return Options{Comment: cfg.Comment, Empty: cfg.Empty}
}

// Description is a parsed grid file.
type Description struct {
	Rows  int
	Cols  int
	Lines []string

	empty rune
}

// Grid builds the initial grid described by d.
func (d Description) Grid() (*core.Grid, error) {
	return life.FromDescription(d.Rows, d.Cols, d.Lines, d.empty)
}

// Load opens path and parses it.
func Load(path string, opts Options) (Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return Description{}, fmt.Errorf("%w: %v", core.ErrUnreadableSource, err)
	}
	defer f.Close()
	d, err := Parse(f, opts)
	if err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse reads a grid description from r.
func Parse(r io.Reader, opts Options) (Description, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, string(opts.Comment)) {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Description{}, fmt.Errorf("%w: %v", core.ErrUnreadableSource, err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return Description{}, fmt.Errorf("%w: missing dimension lines", core.ErrMalformedDescription)
	}

	rows, err := dimension(lines[0], "row")
	if err != nil {
		return Description{}, err
	}
	cols, err := dimension(lines[1], "column")
	if err != nil {
		return Description{}, err
	}
	body := lines[2:]
	if len(body) != rows {
		return Description{}, fmt.Errorf("%w: %d rows declared, %d present", core.ErrMalformedDescription, rows, len(body))
	}
	for i, line := range body {
		if n := len([]rune(line)); n < cols {
			return Description{}, fmt.Errorf("%w: row %d has %d cells, want %d", core.ErrMalformedDescription, i, n, cols)
		}
	}
	return Description{Rows: rows, Cols: cols, Lines: body, empty: opts.Empty}, nil
}

func dimension(line, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %s count %q", core.ErrMalformedDescription, what, line)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s count %d", core.ErrMalformedDescription, what, n)
	}
	return n, nil
}

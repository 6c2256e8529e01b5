// Package life implements the aging Game of Life: neighbor counting, the
// generation transition, the stability heuristic and the simulation loop.
package life

import "agelife/internal/core"

// CountNeighbors returns how many of the up to eight cells around (row, col)
// are alive. Cells beyond the grid edge are not counted; there is no wrapping.
func CountNeighbors(g *core.Grid, row, col int) int {
	cells := g.Cells()
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if !g.InBounds(r, c) {
				continue
			}
			if cells[g.Index(r, c)] > 0 {
				neighbors++
			}
		}
	}
	return neighbors
}

// NextAge applies the transition rule to a single cell. Two neighbors keep a
// living cell aging, three neighbors age any cell (a dead one is born with
// age 1), any other count kills the cell.
func NextAge(age, neighbors int) int {
	switch neighbors {
	case 2:
		if age > 0 {
			return age + 1
		}
		return 0
	case 3:
		return age + 1
	default:
		return 0
	}
}

// NextGeneration computes the candidate grid that follows g. The input grid
// is left untouched.
func NextGeneration(g *core.Grid) *core.Grid {
	next := g.Blank()
	cur, nxt := g.Cells(), next.Cells()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			idx := g.Index(row, col)
			nxt[idx] = NextAge(cur[idx], CountNeighbors(g, row, col))
		}
	}
	return next
}

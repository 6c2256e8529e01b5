package life

import "agelife/internal/core"

// Tally aggregates the ages of a grid.
type Tally struct {
	TotalAge int
	Live     int
}

// Census sums the ages and counts the living cells of g.
func Census(g *core.Grid) Tally {
	var t Tally
	for _, age := range g.Cells() {
		t.TotalAge += age
		if age > 0 {
			t.Live++
		}
	}
	return t
}

// IsStable reports whether candidate looks like a settled successor of
// current. Both conditions must hold:
//
//   - the candidate's total age is at least maxAge per living cell, and
//   - the total age grew by exactly one per cell alive in current.
//
// The check works on aggregates only, so compensating births and deaths can
// fool it.
func IsStable(current, candidate *core.Grid, maxAge int) bool {
	cur := Census(current)
	cand := Census(candidate)
	return cand.TotalAge >= cand.Live*maxAge && cand.TotalAge-cur.TotalAge == cur.Live
}

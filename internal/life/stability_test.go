package life

import "testing"

func TestCensus(t *testing.T) {
	g := gridOf(t, [][]int{
		{0, 3, 0},
		{1, 0, 5},
	})
	got := Census(g)
	if got.TotalAge != 9 || got.Live != 3 {
		t.Fatalf("Census = %+v, want {TotalAge:9 Live:3}", got)
	}
}

func TestAllDeadGridIsStable(t *testing.T) {
	g := gridOf(t, [][]int{
		{0, 0},
		{0, 0},
	})
	next := NextGeneration(g)
	if !IsStable(g, next, 20) {
		t.Fatal("all-dead grid must be stable after one tick")
	}
}

func TestBlockBecomesStableAtMaxAge(t *testing.T) {
	const maxAge = 5
	g := gridOf(t, [][]int{
		{1, 1},
		{1, 1},
	})
	stableAt := -1
	for gen := 0; gen < 10; gen++ {
		next := NextGeneration(g)
		if IsStable(g, next, maxAge) {
			stableAt = gen
			break
		}
		g = next
	}
	// Ages run 1,2,3,4; the candidate with age 5 trips the heuristic.
	if stableAt != 3 {
		t.Fatalf("block stable at tick %d, want 3", stableAt)
	}
}

func TestYoungBlockIsNotStable(t *testing.T) {
	g := gridOf(t, [][]int{
		{1, 1},
		{1, 1},
	})
	if IsStable(g, NextGeneration(g), 20) {
		t.Fatal("young block must not be stable")
	}
}

func TestBirthBreaksStability(t *testing.T) {
	cur := gridOf(t, [][]int{{30, 30, 0}})
	cand := gridOf(t, [][]int{{31, 31, 30}})
	if IsStable(cur, cand, 20) {
		t.Fatal("total age grew by more than the live count")
	}
}

func TestStabilityIsIdempotent(t *testing.T) {
	cur := gridOf(t, [][]int{
		{19, 19},
		{19, 19},
	})
	cand := NextGeneration(cur)
	first := IsStable(cur, cand, 20)
	if !first {
		t.Fatal("expected stable pair")
	}
	for range 3 {
		if IsStable(cur, cand, 20) != first {
			t.Fatal("IsStable changed its answer for the same pair")
		}
	}
}

func TestHeuristicAcceptsCompensatingChange(t *testing.T) {
	// A cell vanishing while another appears with a matching age is
	// indistinguishable from pure aging in aggregate.
	cur := gridOf(t, [][]int{{1, 0}})
	cand := gridOf(t, [][]int{{0, 2}})
	if !IsStable(cur, cand, 2) {
		t.Fatal("aggregate heuristic should accept the compensating pair")
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"agelife/internal/core"
	"agelife/internal/life"
)

type runResult struct {
	seed        int64
	generations int
	stable      bool
	live        int
	totalAge    int
}

func main() {
	runs := flag.Int("runs", 200, "random colonies to simulate")
	maxGen := flag.Int("max-gen", 2000, "generation cap per colony")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first colony")
	rows := flag.Int("rows", 0, "board rows (0 keeps the default)")
	cols := flag.Int("cols", 0, "board columns (0 keeps the default)")
	cells := flag.Int("cells", -1, "live cells per colony (-1 keeps the default)")
	maxAge := flag.Int("max-age", -1, "stability age threshold (-1 keeps the default)")
	flag.Parse()

	cfg := life.DefaultConfig()
	if *rows > 0 {
		cfg.Rows = *rows
	}
	if *cols > 0 {
		cfg.Cols = *cols
	}
	if *cells >= 0 {
		cfg.Cells = *cells
	}
	if *maxAge >= 0 {
		cfg.MaxAge = *maxAge
	}
	if cfg.Cells > cfg.Rows*cfg.Cols {
		log.Fatalf("cannot place %d cells on a %dx%d board", cfg.Cells, cfg.Rows, cfg.Cols)
	}

	fmt.Printf("Sweeping %d colonies of %d cells on %dx%d (%d workers, cap %d generations)\n",
		*runs, cfg.Cells, cfg.Rows, cfg.Cols, *workers, *maxGen)

	var (
		mu  sync.Mutex
		all []runResult
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))

	start := time.Now()
	for i := 0; i < *runs; i++ {
		s := *seed + int64(i)
		g.Go(func() error {
			res, err := runColony(ctx, cfg, s, *maxGen)
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	stable := 0
	var gens []int
	for _, res := range all {
		if res.stable {
			stable++
			gens = append(gens, res.generations)
		}
	}
	sort.Ints(gens)
	sort.Slice(all, func(i, j int) bool { return all[i].generations > all[j].generations })

	fmt.Printf("\n%d/%d colonies stabilised within %d generations (elapsed %s)\n",
		stable, len(all), *maxGen, elapsed.Round(time.Millisecond))
	if len(gens) > 0 {
		fmt.Printf("generations to stability: min=%d median=%d max=%d\n", gens[0], gens[len(gens)/2], gens[len(gens)-1])
	}

	fmt.Printf("\nLongest runs:\n")
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d generations=%d stable=%v live=%d totalAge=%d\n",
			i+1, res.seed, res.generations, res.stable, res.live, res.totalAge)
	}
}

func runColony(ctx context.Context, cfg life.Config, seed int64, maxGen int) (runResult, error) {
	grid, err := life.Randomize(cfg.Rows, cfg.Cols, cfg.Cells, core.NewRNG(seed))
	if err != nil {
		return runResult{}, err
	}
	res := runResult{seed: seed}
	for res.generations < maxGen {
		if err := ctx.Err(); err != nil {
			return runResult{}, err
		}
		next := life.NextGeneration(grid)
		if life.IsStable(grid, next, cfg.MaxAge) {
			res.stable = true
			break
		}
		grid = next
		res.generations++
	}
	tally := life.Census(grid)
	res.live, res.totalAge = tally.Live, tally.TotalAge
	return res, nil
}

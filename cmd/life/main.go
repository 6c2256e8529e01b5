package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"agelife/internal/app"
	"agelife/internal/console"
	"agelife/internal/core"
	"agelife/internal/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := app.Frontends()[cfg.Frontend]
	if !ok {
		if cfg.Frontend == "gui" {
			fmt.Fprintln(os.Stderr, "The gui frontend requires the ebiten build tag.")
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life -frontend gui` or build with `-tags ebiten`.")
			os.Exit(2)
		}
		log.Fatalf("unknown frontend %q (available: %s)", cfg.Frontend, strings.Join(app.FrontendNames(), ", "))
	}

	lifeCfg := life.FromMap(cfg.Params)
	if cfg.ShowParams {
		app.PrintParameters(os.Stdout, lifeCfg.Parameters())
	}

	prompt := console.New(os.Stdin, os.Stdout, lifeCfg.StopWord)
	frontend := factory(app.Env{Config: cfg, Life: lifeCfg, Prompter: prompt})
	session := app.NewSession(lifeCfg, prompt, frontend, core.NewRNG(cfg.Seed))

	// Interrupts are handled per simulation by the session.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	err := frontend.Host(ctx, session.Run)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, app.ErrWindowClosed):
	default:
		log.Fatal(err)
	}
}

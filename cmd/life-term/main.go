package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golife/internal/app"
	"golife/internal/term"
	"golife/pkg/core"
	_ "golife/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fit := flag.Bool("fit", false, "size the grid to the terminal instead of -w/-h")
	fps := flag.Int("fps", 30, "frames drawn per second")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	if *fit {
		cols, rows := screen.Size()
		cfg.Width = cols
		cfg.Height = 2 * rows
		if cfg.HUD {
			cfg.Height -= 2
		}
	}

	sim, err := core.Lookup(cfg.Sim, cfg.SimMap())
	if err != nil {
		screen.Fini()
		log.Fatalf("build sim: %v", err)
	}
	sim.Reset(cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := term.NewRunner(screen, sim, term.Options{TPS: cfg.TPS, FPS: *fps, Seed: cfg.Seed, Status: cfg.HUD})
	err = runner.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

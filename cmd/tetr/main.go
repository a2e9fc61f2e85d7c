package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/tetr/debugui"
	debugui_ebiten "github.com/plus3/tetr/debugui/ebiten"
	"github.com/plus3/tetr/render"
	"github.com/plus3/tetr/term"
	"github.com/plus3/tetr/tetris"
)

type options struct {
	ui    string
	debug bool
	fall  time.Duration
	seed  uint64
	scale int
}

func main() {
	var opts options
	flag.StringVar(&opts.ui, "ui", "ebiten", "Frontend to play in: ebiten or term.")
	flag.BoolVar(&opts.debug, "debug", false, "Show the Dear ImGui debug windows (ebiten only).")
	flag.DurationVar(&opts.fall, "fall", tetris.DefaultFallInterval, "How long a piece stays on a row before it drops.")
	flag.Uint64Var(&opts.seed, "seed", 0, "Seed for the piece sequence; 0 picks one from the clock.")
	flag.IntVar(&opts.scale, "scale", 1, "Window scale factor (ebiten only).")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("tetr: %v", err)
	}
}

func run(opts options) error {
	if opts.fall <= 0 {
		return fmt.Errorf("-fall must be positive, got %s", opts.fall)
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gameOptions := []tetris.Option{
		tetris.WithFallInterval(opts.fall),
		tetris.WithSource(tetris.NewRandomSource(seed)),
		tetris.WithRestart(),
	}

	switch opts.ui {
	case "ebiten":
		return runEbiten(opts, gameOptions)
	case "term":
		if opts.debug {
			log.Println("-debug is ignored by the terminal frontend")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := term.Run(ctx, gameOptions...); err != nil {
			return fmt.Errorf("terminal frontend: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown -ui %q, want ebiten or term", opts.ui)
	}
}

func runEbiten(opts options, gameOptions []tetris.Option) error {
	if !opts.debug {
		return render.Run(tetris.NewGame(gameOptions...), nil, opts.scale)
	}

	game := tetris.NewGame(append(gameOptions, tetris.WithSystem(&debugui.ImguiSystem{}))...)
	backend := debugui_ebiten.New(game.World(), "tetr debug", 1280, 720)
	debugui.SpawnDebugUI(game)

	return render.Run(game, backend, opts.scale)
}

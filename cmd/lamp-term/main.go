package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"lava-lamp/internal/app"
	"lava-lamp/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lamp, err := cfg.BuildLamp()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The lamp reports through the default logger; keep it off the screen.
	log.SetOutput(io.Discard)
	viewer := term.New(screen, app.NewController(lamp), cfg.TPS)
	err = viewer.Run(ctx)
	screen.Fini()
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

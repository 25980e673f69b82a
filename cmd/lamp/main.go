//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lava-lamp/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lamp, err := cfg.BuildLamp()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(lamp, cfg.Scale, cfg.HUDWidth, cfg.Shader)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("lava-lamp - " + lamp.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

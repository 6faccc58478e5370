//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"aoc/internal/app"
	"aoc/internal/input"
	"aoc/internal/puzzles/regolith"
	"aoc/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	text, err := input.Read(cfg.Input)
	if err != nil {
		log.Fatal(err)
	}
	cave, err := regolith.Parse(text)
	if err != nil {
		log.Fatalf("parse %s: %v", cfg.Input, err)
	}

	scene := regolith.NewScene(cave, regolith.FromMap(cfg.Options.Map()))
	game := app.New(scene, cfg.Scale)
	size := scene.Size()

	ebiten.SetWindowTitle("aoc - " + scene.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+ui.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

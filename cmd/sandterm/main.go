package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"aoc/internal/app"
	"aoc/internal/input"
	"aoc/internal/puzzles/regolith"
	"aoc/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 20
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
	sceneCfg := regolith.FromMap(cfg.Options.Map())
	scene := regolith.NewScene(cave, sceneCfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	view := term.NewView(screen, scene)
	view.Center(regolith.Source.X - scene.OriginX())
	view.Run(cfg.TPS)
}

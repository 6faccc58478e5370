package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	_ "aoc/internal/puzzles/assembunny"
	_ "aoc/internal/puzzles/regolith"
	"aoc/internal/runner"
)

var log = logrus.New()

func main() {
	cfg := runner.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log.SetOutput(os.Stderr)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := runner.New(*cfg, os.Stdout, log).Run(); err != nil {
		log.WithError(err).Fatal("run failed")
	}
}

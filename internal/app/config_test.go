package app

import (
	"flag"
	"testing"

	"aoc/internal/puzzles/regolith"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-input", "cave.txt", "-scale", "2", "-set", "floored=true", "-set", "units = 10", "-set", "junk"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if cfg.Input != "cave.txt" || cfg.Scale != 2 || cfg.TPS != 60 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	opts := cfg.Options.Map()
	if len(opts) != 2 || opts["floored"] != "true" || opts["units"] != "10" {
		t.Fatalf("unexpected options %v", opts)
	}
	sc := regolith.FromMap(opts)
	if !sc.Floored || sc.UnitsPerStep != 10 {
		t.Fatalf("options did not reach the scene config: %+v", sc)
	}
	if cfg.Options.String() != "floored=true,units = 10,junk" {
		t.Fatalf("String = %q", cfg.Options.String())
	}
}

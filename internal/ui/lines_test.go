package ui

import (
	"slices"
	"testing"

	"aoc/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Cave", Params: []core.Parameter{{Key: "depth", Label: "Depth", Value: "9"}}},
		{Name: "Run", Summary: "open bottom", Params: []core.Parameter{{Key: "resting", Value: "24"}}},
	}}

	want := []string{"Cave", "  Depth: 9", "Run", "  open bottom", "  resting: 24"}
	if got := Lines(snap); !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	if got := Status(snap); got != "depth=9  resting=24" {
		t.Fatalf("Status = %q", got)
	}
}

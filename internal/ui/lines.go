package ui

import (
	"fmt"

	"aoc/internal/core"
)

// PanelWidth is the width in pixels of the HUD panel beside the grid.
const PanelWidth = 160

// Lines flattens a parameter snapshot into display lines: one header per
// group followed by indented "Label: value" rows.
func Lines(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		out = append(out, g.Name)
		if g.Summary != "" {
			out = append(out, "  "+g.Summary)
		}
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			out = append(out, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
	return out
}

// Status flattens a snapshot into a single line for terminals.
func Status(snap core.ParameterSnapshot) string {
	s := ""
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if s != "" {
				s += "  "
			}
			s += fmt.Sprintf("%s=%s", p.Key, p.Value)
		}
	}
	return s
}

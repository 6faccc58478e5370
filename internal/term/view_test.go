package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"aoc/internal/puzzles/regolith"
)

const sample = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func newTestView(t *testing.T, w, h int) (*View, tcell.SimulationScreen, *regolith.Scene) {
	t.Helper()
	cave, err := regolith.Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := regolith.DefaultConfig()
	cfg.Margin = 0
	scene := regolith.NewScene(cave, cfg)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return NewView(screen, scene), screen, scene
}

func row(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawShowsCave(t *testing.T) {
	view, screen, _ := newTestView(t, 10, 11)
	view.Draw()

	// Columns 494..503, rows 0..9, status on row 10.
	if got := row(screen, 0, 10); got != "......+..." {
		t.Fatalf("row 0 = %q", got)
	}
	if got := row(screen, 4, 10); got != "....#...##" {
		t.Fatalf("row 4 = %q", got)
	}
	if got := row(screen, 9, 10); got != "#########." {
		t.Fatalf("row 9 = %q", got)
	}
	if status := row(screen, 10, 10); !strings.HasPrefix(status, "regolith") {
		t.Fatalf("status = %q", status)
	}
}

func TestKeysStepAndReset(t *testing.T) {
	view, screen, scene := newTestView(t, 10, 11)

	view.handle(tcell.KeyRune, 'n')
	view.Draw()
	if scene.Reservoir().Resting() != 1 {
		t.Fatalf("resting = %d after one step", scene.Reservoir().Resting())
	}
	if r, _, _, _ := screen.GetContent(6, 8); r != 'o' {
		t.Fatalf("expected sand at (500,8), got %q", r)
	}

	view.handle(tcell.KeyRune, 'r')
	if scene.Reservoir().Resting() != 0 {
		t.Fatal("reset did not clear the run")
	}
	view.handle(tcell.KeyRune, ' ')
	if !view.paused {
		t.Fatal("space must pause")
	}
	if !view.handle(tcell.KeyRune, 'q') {
		t.Fatal("q must quit")
	}
	if !view.handle(tcell.KeyEscape, 0) {
		t.Fatal("escape must quit")
	}
}

func TestScrollClamps(t *testing.T) {
	view, _, _ := newTestView(t, 4, 5)
	view.Scroll(100, 100)
	// Grid is 10x10, screen shows 4x4 cells above the status line.
	if view.offX != 6 || view.offY != 6 {
		t.Fatalf("offset = (%d,%d), want (6,6)", view.offX, view.offY)
	}
	view.Scroll(-100, -100)
	if view.offX != 0 || view.offY != 0 {
		t.Fatalf("offset = (%d,%d), want (0,0)", view.offX, view.offY)
	}
	view.Center(6)
	if view.offX != 4 {
		t.Fatalf("Center offset = %d, want 4", view.offX)
	}
}

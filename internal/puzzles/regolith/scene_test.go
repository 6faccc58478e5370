package regolith

import (
	"strconv"
	"testing"
)

func count(cells []uint8, v uint8) int {
	n := 0
	for _, c := range cells {
		if c == v {
			n++
		}
	}
	return n
}

func TestSceneMatchesSolve(t *testing.T) {
	cave := mustParse(t, sample)
	for _, floored := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Floored = floored
		cfg.UnitsPerStep = 7

		scene := NewScene(cave, cfg)
		for steps := 0; !scene.Done(); steps++ {
			if steps > 1000 {
				t.Fatal("scene did not terminate")
			}
			scene.Step()
		}

		want := 24
		if floored {
			want = 93
		}
		if got := scene.Reservoir().Resting(); got != want {
			t.Fatalf("floored=%v resting=%d, want %d", floored, got, want)
		}
		if got := count(scene.Cells(), CellSand); got != want {
			t.Fatalf("floored=%v drew %d sand cells, want %d", floored, got, want)
		}
	}
}

func TestSceneFraming(t *testing.T) {
	cave := mustParse(t, sample)
	scene := NewScene(cave, DefaultConfig())
	size := scene.Size()
	// x spans 494..503 plus a margin of 2 on each side; y spans 0..9.
	if size.W != 14 || size.H != 10 {
		t.Fatalf("size = %+v", size)
	}
	if got := count(scene.Cells(), CellRock); got != cave.Rock.Len() {
		t.Fatalf("drew %d rock cells, want %d", got, cave.Rock.Len())
	}
	if got := count(scene.Cells(), CellSource); got != 1 {
		t.Fatalf("drew %d source cells", got)
	}

	cfg := DefaultConfig()
	cfg.Floored = true
	floored := NewScene(cave, cfg)
	from, to := FloorSpan(11)
	if got := count(floored.Cells(), CellFloor); got != to-from+1 {
		t.Fatalf("drew %d floor cells, want %d", got, to-from+1)
	}
}

func TestSceneResetClearsSand(t *testing.T) {
	scene := NewScene(mustParse(t, sample), DefaultConfig())
	scene.Step()
	scene.Step()
	if count(scene.Cells(), CellSand) != 2 {
		t.Fatal("expected two resting units")
	}
	if count(scene.Cells(), CellPath) == 0 {
		t.Fatal("expected the last unit's path to be drawn")
	}
	scene.Reset()
	if count(scene.Cells(), CellSand) != 0 || count(scene.Cells(), CellPath) != 0 {
		t.Fatal("Reset left sand behind")
	}
	if scene.Reservoir().Resting() != 0 {
		t.Fatal("Reset kept the old reservoir")
	}
}

func TestSceneParameters(t *testing.T) {
	scene := NewScene(mustParse(t, sample), DefaultConfig())
	scene.Step()
	snap := scene.Parameters()
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["depth"] != "9" || values["resting"] != strconv.Itoa(1) || values["mode"] != "open" {
		t.Fatalf("unexpected parameters %v", values)
	}
	if scene.Glyph(CellRock) != '#' || scene.Glyph(200) != '?' {
		t.Fatal("unexpected glyphs")
	}
	if len(scene.Palette()) != int(CellSource)+1 {
		t.Fatal("palette does not cover every cell value")
	}
}

func TestSceneOrigin(t *testing.T) {
	scene := NewScene(mustParse(t, sample), DefaultConfig())
	if got := scene.OriginX(); got != 492 {
		t.Fatalf("OriginX = %d, want 492", got)
	}
	if scene.Cells()[Source.X-scene.OriginX()] != CellSource {
		t.Fatal("source not drawn at its column")
	}
}

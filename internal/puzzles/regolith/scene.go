package regolith

import (
	"strconv"

	"aoc/internal/core"
)

// Scene rasterises a reservoir run so it can be stepped and drawn.
type Scene struct {
	cfg  Config
	cave Cave

	rock  Set
	floor int
	res   *Reservoir

	grid    *core.ByteGrid
	originX int
	path    []core.Point
}

// NewScene frames cave for the run selected by cfg.
func NewScene(cave Cave, cfg Config) *Scene {
	if cfg.UnitsPerStep <= 0 {
		cfg.UnitsPerStep = 1
	}
	if cfg.Margin < 0 {
		cfg.Margin = 0
	}
	s := &Scene{cfg: cfg, cave: cave}

	minX, maxX := Source.X, Source.X
	for p := range cave.Rock {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
	}
	floor := cave.Depth
	if cfg.Floored {
		floor = cave.Depth + 2
		from, to := FloorSpan(floor)
		minX = min(minX, from)
		maxX = max(maxX, to)
	}
	s.floor = floor
	s.originX = minX - cfg.Margin
	s.grid = core.NewByteGrid(maxX-minX+1+2*cfg.Margin, floor+1)
	s.Reset()
	return s
}

// Name returns the simulation identifier.
func (s *Scene) Name() string { return "regolith" }

// Size returns the grid dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the render buffer.
func (s *Scene) Cells() []uint8 { return s.grid.Cells() }

// Done reports whether the run has terminated.
func (s *Scene) Done() bool { return s.res.Done() }

// OriginX returns the cave x coordinate of grid column 0.
func (s *Scene) OriginX() int { return s.originX }

// Reservoir exposes the underlying run.
func (s *Scene) Reservoir() *Reservoir { return s.res }

// Reset discards poured sand and redraws the empty cave.
func (s *Scene) Reset() {
	s.rock = s.cave.Rock.Clone()
	if s.cfg.Floored {
		AddFloor(s.rock, s.floor)
	}
	s.res = NewReservoir(s.rock, s.floor)
	s.path = s.path[:0]

	s.grid.Clear()
	for p := range s.rock {
		v := CellRock
		if s.cfg.Floored && p.Y == s.floor {
			v = CellFloor
		}
		s.set(p, v)
	}
	s.set(Source, CellSource)
}

// Step pours the configured number of units.
func (s *Scene) Step() {
	for _, p := range s.path {
		if s.at(p) == CellPath {
			s.set(p, CellAir)
		}
	}
	for i := 0; i < s.cfg.UnitsPerStep && !s.res.Done(); i++ {
		if s.res.Drop() == Stopped {
			s.set(s.res.Last(), CellSand)
		}
	}
	s.path = append(s.path[:0], s.res.Path()...)
	for _, p := range s.path {
		if s.at(p) == CellAir {
			s.set(p, CellPath)
		}
	}
}

func (s *Scene) set(p core.Point, v uint8) { s.grid.Set(p.X-s.originX, p.Y, v) }

func (s *Scene) at(p core.Point) uint8 { return s.grid.At(p.X-s.originX, p.Y) }

// Parameters reports cave and run statistics for HUDs.
func (s *Scene) Parameters() core.ParameterSnapshot {
	mode := "open"
	if s.cfg.Floored {
		mode = "floored"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Cave",
			Params: []core.Parameter{
				{Key: "rock", Label: "Rock", Value: strconv.Itoa(s.cave.Rock.Len())},
				{Key: "depth", Label: "Depth", Value: strconv.Itoa(s.cave.Depth)},
				{Key: "floor", Label: "Floor", Value: strconv.Itoa(s.floor)},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "mode", Label: "Mode", Value: mode},
				{Key: "resting", Label: "Resting", Value: strconv.Itoa(s.res.Resting())},
				{Key: "state", Label: "State", Value: s.res.State().String()},
			},
		},
	}}
}

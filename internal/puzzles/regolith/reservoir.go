package regolith

import "aoc/internal/core"

// State is the outcome of moving a unit of sand.
type State uint8

const (
	// Continue means the unit slid diagonally and keeps moving.
	Continue State = iota
	// Stopped means the unit came to rest.
	Stopped
	// Infinite means the unit fell past the floor and never stops.
	Infinite
)

func (s State) String() string {
	switch s {
	case Continue:
		return "falling"
	case Stopped:
		return "stopped"
	case Infinite:
		return "infinite"
	}
	return "unknown"
}

// Source is where every unit of sand enters the cave.
var Source = core.Point{X: 500, Y: 0}

// Reservoir pours sand one unit at a time into a cave. The rock set is only
// read; resting sand is kept in a set owned by the reservoir.
type Reservoir struct {
	rock  Set
	sand  Set
	floor int

	resting int
	state   State
	done    bool
	last    core.Point
	path    []core.Point
}

// NewReservoir prepares a run over rock where units falling to floor are
// lost.
func NewReservoir(rock Set, floor int) *Reservoir {
	return &Reservoir{rock: rock, sand: Set{}, floor: floor}
}

func (r *Reservoir) occupied(p core.Point) bool {
	return r.rock.Has(p) || r.sand.Has(p)
}

// move advances a unit from p until it slides, stops or escapes.
func (r *Reservoir) move(p core.Point) (core.Point, State) {
	for p.Y < r.floor && !r.occupied(p.Down()) {
		p = p.Down()
		r.path = append(r.path, p)
	}
	if p.Y >= r.floor {
		return p, Infinite
	}
	if next := p.DownLeft(); !r.occupied(next) {
		r.path = append(r.path, next)
		return next, Continue
	}
	if next := p.DownRight(); !r.occupied(next) {
		r.path = append(r.path, next)
		return next, Continue
	}
	return p, Stopped
}

// Drop pours a single unit from the source and returns how it ended. Once
// the run is done Drop keeps returning the final state without pouring.
func (r *Reservoir) Drop() State {
	if r.done {
		return r.state
	}

	p := Source
	r.path = append(r.path[:0], p)
	state := Continue
	for state == Continue {
		p, state = r.move(p)
	}
	r.last = p
	r.state = state

	switch state {
	case Infinite:
		r.done = true
	case Stopped:
		r.resting++
		r.sand.Add(p)
		if p == Source {
			r.done = true
		}
	}
	return state
}

// Resting returns how many units have come to rest so far.
func (r *Reservoir) Resting() int { return r.resting }

// Done reports whether the run has terminated.
func (r *Reservoir) Done() bool { return r.done }

// State returns the outcome of the most recent unit.
func (r *Reservoir) State() State { return r.state }

// Last returns where the most recent unit stopped or escaped.
func (r *Reservoir) Last() core.Point { return r.last }

// Path returns the cells visited by the most recent unit. The slice is
// reused by the next Drop.
func (r *Reservoir) Path() []core.Point { return r.path }

// Sand exposes the resting sand.
func (r *Reservoir) Sand() Set { return r.sand }

// Floor returns the depth at which units are lost.
func (r *Reservoir) Floor() int { return r.floor }

// Simulate pours sand until a unit escapes past floor or the source is
// blocked, and returns the number of units at rest.
func Simulate(rock Set, floor int) int {
	r := NewReservoir(rock, floor)
	for !r.Done() {
		r.Drop()
	}
	return r.Resting()
}

// FloorSpan returns the x range of a floor at depth floor that no unit
// poured from Source can fall past.
func FloorSpan(floor int) (from, to int) {
	return Source.X - floor - 1, Source.X + floor + 1
}

// AddFloor inserts a horizontal rock line at depth floor into rock.
func AddFloor(rock Set, floor int) {
	from, to := FloorSpan(floor)
	for x := from; x <= to; x++ {
		rock.Add(core.Point{X: x, Y: floor})
	}
}

// Solve runs the open-bottom cave and then the same cave with a floor two
// rows below the deepest rock. The floor is added to a copy of cave.Rock.
func Solve(cave Cave) (open, floored int) {
	rock := cave.Rock.Clone()
	open = Simulate(rock, cave.Depth)

	floor := cave.Depth + 2
	AddFloor(rock, floor)
	floored = Simulate(rock, floor)
	return open, floored
}

package regolith

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"aoc/internal/core"
)

// ErrInvalidInput marks every failure to read a cave description.
var ErrInvalidInput = errors.New("invalid input")

// ParseError reports the offending line and token of a malformed cave scan.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap exposes both ErrInvalidInput and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// Set is a set of occupied cells.
type Set map[core.Point]struct{}

// Add inserts p. Adding a present cell is a no-op.
func (s Set) Add(p core.Point) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s Set) Has(p core.Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of cells in the set.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set { return maps.Clone(s) }

// Cave is the parsed scan: every rock cell and the deepest rock row.
type Cave struct {
	Rock  Set
	Depth int
}

// Parse reads one polyline per line in the form "x1,y1 -> x2,y2 -> ...".
// Every lattice point on each segment is marked as rock, endpoints included.
// Blank lines are skipped. Segments must be horizontal or vertical.
func Parse(input string) (Cave, error) {
	cave := Cave{Rock: Set{}}
	seen := false

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		points, err := parsePolyline(i+1, line)
		if err != nil {
			return Cave{}, err
		}
		for _, p := range points {
			if !seen || p.Y > cave.Depth {
				cave.Depth = p.Y
				seen = true
			}
		}
		if len(points) == 1 {
			cave.Rock.Add(points[0])
			continue
		}
		for j := 1; j < len(points); j++ {
			if err := fillSegment(cave.Rock, points[j-1], points[j]); err != nil {
				return Cave{}, &ParseError{Line: i + 1, Token: line, Err: err}
			}
		}
	}
	return cave, nil
}

func parsePolyline(lineNo int, line string) ([]core.Point, error) {
	fields := strings.Split(line, "->")
	points := make([]core.Point, 0, len(fields))
	for _, f := range fields {
		p, err := parsePoint(strings.TrimSpace(f))
		if err != nil {
			return nil, &ParseError{Line: lineNo, Token: strings.TrimSpace(f), Err: err}
		}
		points = append(points, p)
	}
	return points, nil
}

func parsePoint(tok string) (core.Point, error) {
	xs, ys, ok := strings.Cut(tok, ",")
	if !ok {
		return core.Point{}, errors.New("missing ',' separator")
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, err
	}
	return core.Point{X: x, Y: y}, nil
}

func fillSegment(rock Set, a, b core.Point) error {
	if a.X != b.X && a.Y != b.Y {
		return fmt.Errorf("segment %d,%d -> %d,%d is not axis-aligned", a.X, a.Y, b.X, b.Y)
	}
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			rock.Add(core.Point{X: x, Y: y})
		}
	}
	return nil
}

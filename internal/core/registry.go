package core

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownSolution is returned when a selection names a day that has no
// registered solution.
var ErrUnknownSolution = errors.New("unknown solution")

// Solution is a single day's puzzle: it parses its input once and then
// produces both answers.
type Solution interface {
	Parse(input string) error
	Run() (int, int)
}

// ID identifies a solution by event year and day.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string { return fmt.Sprintf("%d/%02d", id.Year, id.Day) }

// Factory constructs a fresh Solution.
type Factory func() Solution

var solutions = map[ID]Factory{}

// Register adds a solution factory under the provided id.
func Register(id ID, f Factory) {
	if id.Year == 0 || id.Day == 0 || f == nil {
		return
	}
	solutions[id] = f
}

// Solutions exposes the registry of available solution factories.
func Solutions() map[ID]Factory {
	return solutions
}

// IDs returns every registered id ordered by year, then day.
func IDs() []ID {
	ids := make([]ID, 0, len(solutions))
	for id := range solutions {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ID) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Day - b.Day
	})
	return ids
}

// SelectorKind enumerates the supported ways of picking days.
type SelectorKind uint8

const (
	SelectAll SelectorKind = iota
	SelectLast
	SelectDay
)

// Selector picks which of a year's solutions to run.
type Selector struct {
	Kind SelectorKind
	Day  int
}

// ParseSelector accepts "all", "last" or a day number.
func ParseSelector(s string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return Selector{Kind: SelectLast}, nil
	case "all":
		return Selector{Kind: SelectAll}, nil
	}
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || day <= 0 {
		return Selector{}, fmt.Errorf("invalid day selector %q", s)
	}
	return Selector{Kind: SelectDay, Day: day}, nil
}

// Select resolves sel against the solutions registered for year. A zero
// year means every registered year.
func Select(year int, sel Selector) ([]ID, error) {
	var ids []ID
	for _, id := range IDs() {
		if year == 0 || id.Year == year {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no solutions for year %d", ErrUnknownSolution, year)
	}

	switch sel.Kind {
	case SelectAll:
		return ids, nil
	case SelectLast:
		return ids[len(ids)-1:], nil
	case SelectDay:
		for _, id := range ids {
			if id.Day == sel.Day {
				return []ID{id}, nil
			}
		}
		return nil, fmt.Errorf("%w: day %d of year %d", ErrUnknownSolution, sel.Day, year)
	}
	return nil, fmt.Errorf("unsupported selector kind %d", sel.Kind)
}

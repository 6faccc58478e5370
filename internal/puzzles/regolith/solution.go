package regolith

import "aoc/internal/core"

// Solution answers 2022 day 14.
type Solution struct {
	cave Cave
}

// Parse reads the cave scan.
func (s *Solution) Parse(input string) error {
	cave, err := Parse(input)
	if err != nil {
		return err
	}
	s.cave = cave
	return nil
}

// Run returns the resting sand without and with the floor.
func (s *Solution) Run() (int, int) { return Solve(s.cave) }

// Cave exposes the parsed scan.
func (s *Solution) Cave() Cave { return s.cave }

func init() {
	core.Register(core.ID{Year: 2022, Day: 14}, func() core.Solution { return &Solution{} })
}

// Package input locates and reads puzzle input files.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"aoc/internal/core"
)

// Path returns the conventional location of a day's input below dir,
// e.g. input/2022/14.
func Path(dir string, id core.ID) string {
	return filepath.Join(dir, strconv.Itoa(id.Year), strconv.Itoa(id.Day))
}

// Read returns the full contents of the file at path.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

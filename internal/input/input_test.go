package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"aoc/internal/core"
)

func TestPath(t *testing.T) {
	got := Path("in", core.ID{Year: 2022, Day: 4})
	if want := filepath.Join("in", "2022", "4"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "14")
	if err := os.WriteFile(path, []byte("498,4 -> 498,6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "498,4 -> 498,6\n" {
		t.Fatalf("Read = %q", got)
	}

	if _, err := Read(filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

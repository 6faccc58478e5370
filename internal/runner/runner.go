// Package runner selects registered solutions, feeds them their input and
// prints their answers.
package runner

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"aoc/internal/core"
	"aoc/internal/input"
)

// ErrFileWithManyDays is returned when an explicit input file is given for
// a selection of more than one day.
var ErrFileWithManyDays = errors.New("-file requires a single day")

// Runner runs solutions in order and writes their answers to out.
type Runner struct {
	cfg Config
	out io.Writer
	log *logrus.Logger
}

// New constructs a Runner. A nil logger discards log output.
func New(cfg Config, out io.Writer, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Runner{cfg: cfg, out: out, log: log}
}

// Run resolves the configured selection and runs every selected solution.
// The first failure stops the run.
func (r *Runner) Run() error {
	sel, err := core.ParseSelector(r.cfg.Which)
	if err != nil {
		return err
	}
	ids, err := core.Select(r.cfg.Year, sel)
	if err != nil {
		return err
	}
	if r.cfg.File != "" && len(ids) != 1 {
		return ErrFileWithManyDays
	}

	for _, id := range ids {
		if err := r.runOne(id); err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
	}
	return nil
}

func (r *Runner) runOne(id core.ID) error {
	path := r.cfg.File
	if path == "" {
		path = input.Path(r.cfg.InputDir, id)
	}
	text, err := input.Read(path)
	if err != nil {
		return err
	}

	sol := core.Solutions()[id]()
	start := time.Now()
	if err := sol.Parse(text); err != nil {
		return err
	}
	parsed := time.Since(start)
	one, two := sol.Run()

	r.log.WithFields(logrus.Fields{
		"year":  id.Year,
		"day":   id.Day,
		"input": path,
		"parse": parsed,
		"total": time.Since(start),
	}).Debug("solved")

	fmt.Fprintf(r.out, "== %s ==\n", id)
	fmt.Fprintf(r.out, "Part 1: %d\n", one)
	fmt.Fprintf(r.out, "Part 2: %d\n", two)
	return nil
}

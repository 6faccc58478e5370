package runner

import "flag"

// Config represents the command-line parameters of the solution runner.
type Config struct {
	InputDir string
	Year     int
	Which    string
	File     string
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{InputDir: "input", Year: 2022, Which: "last"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.InputDir, "input", c.InputDir, "directory holding <year>/<day> input files")
	fs.IntVar(&c.Year, "year", c.Year, "event year to run; 0 runs every year")
	fs.StringVar(&c.Which, "day", c.Which, `day to run: a number, "last" or "all"`)
	fs.StringVar(&c.File, "file", c.File, "explicit input file (single day only)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log timing for each solution")
}

package app

import (
	"flag"
	"strings"
)

// Options collects repeatable key=value flags passed through to the scene.
type Options []string

func (o *Options) String() string {
	return strings.Join(*o, ",")
}

// Set appends one key=value pair.
func (o *Options) Set(value string) error {
	*o = append(*o, value)
	return nil
}

// Map returns the options as a map; malformed entries are skipped.
func (o Options) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

// Config represents the command-line parameters of the viewers.
type Config struct {
	Input   string
	Scale   int
	TPS     int
	Options Options
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Input: "input/2022/14", Scale: 3, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "cave scan to load")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Var(&c.Options, "set", "scene option in key=value form (repeatable): floored, units, margin")
}

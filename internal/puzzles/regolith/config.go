package regolith

import "strconv"

// Config controls how a Scene pours and frames the cave.
type Config struct {
	// Floored adds the floor two rows below the deepest rock.
	Floored bool
	// UnitsPerStep is how many units each Step pours.
	UnitsPerStep int
	// Margin is the number of empty columns kept on each side of the view.
	Margin int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Floored: false, UnitsPerStep: 1, Margin: 2}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["floored"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Floored = parsed
		}
	}
	if v, ok := cfg["units"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.UnitsPerStep = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	return c
}

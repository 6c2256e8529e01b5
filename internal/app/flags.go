package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Frontend   string
	Scale      int
	Seed       int64
	ShowParams bool
	// Params holds simulation overrides passed to life.FromMap.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Frontend: "text", Scale: 12, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "display to use: text, tui or gui")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the gui")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random colonies (0 uses the clock)")
	fs.BoolVar(&c.ShowParams, "show-params", c.ShowParams, "print the simulation parameters at startup")
	fs.Func("param", "simulation parameter as key=value (repeatable)", c.setParam)
}

func (c *Config) setParam(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("parameter %q is not key=value", kv)
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	c.Params[key] = strings.TrimSpace(value)
	return nil
}

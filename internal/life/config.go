package life

import (
	"strconv"
	"time"
	"unicode/utf8"

	"agelife/internal/core"
)

// Speed selects how generations are paced.
type Speed int

const (
	SpeedFast Speed = iota + 1
	SpeedMedium
	SpeedSlow
	SpeedManual
)

// Valid reports whether s is one of the four known speeds.
func (s Speed) Valid() bool { return s >= SpeedFast && s <= SpeedManual }

// String returns a readable name for the speed.
func (s Speed) String() string {
	switch s {
	case SpeedFast:
		return "fast"
	case SpeedMedium:
		return "medium"
	case SpeedSlow:
		return "slow"
	case SpeedManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Config holds the constants governing a simulation run.
type Config struct {
	// MaxAge is the age threshold used by the stability heuristic.
	MaxAge int

	// Rows, Cols and Cells size the randomly seeded board.
	Rows  int
	Cols  int
	Cells int

	PauseFast   time.Duration
	PauseMedium time.Duration
	PauseSlow   time.Duration

	StopWord string
	Empty    rune
	Comment  rune
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxAge:      20,
		Rows:        40,
		Cols:        40,
		Cells:       800,
		PauseFast:   1 * time.Millisecond,
		PauseMedium: 100 * time.Millisecond,
		PauseSlow:   500 * time.Millisecond,
		StopWord:    "quit",
		Empty:       '-',
		Comment:     '#',
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Pauses are given in milliseconds. Invalid values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["max_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxAge = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cells = parsed
		}
	}
	if c.Cells > c.Rows*c.Cols {
		c.Cells = c.Rows * c.Cols
	}
	if v, ok := cfg["pause_fast"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PauseFast = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["pause_medium"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PauseMedium = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["pause_slow"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PauseSlow = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["stop_word"]; ok && v != "" {
		c.StopWord = v
	}
	if v, ok := cfg["empty"]; ok && utf8.RuneCountInString(v) == 1 {
		c.Empty, _ = utf8.DecodeRuneInString(v)
	}
	if v, ok := cfg["comment"]; ok && utf8.RuneCountInString(v) == 1 {
		c.Comment, _ = utf8.DecodeRuneInString(v)
	}
	return c
}

// Pause returns the delay between generations for a timed speed. Manual
// and unknown speeds return zero.
func (c Config) Pause(s Speed) time.Duration {
	switch s {
	case SpeedFast:
		return c.PauseFast
	case SpeedMedium:
		return c.PauseMedium
	case SpeedSlow:
		return c.PauseSlow
	default:
		return 0
	}
}

// Parameters reports the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rules",
			Params: []core.Parameter{
				intParam("max_age", "Max age", c.MaxAge),
			},
		},
		{
			Name: "Random board",
			Params: []core.Parameter{
				intParam("rows", "Rows", c.Rows),
				intParam("cols", "Columns", c.Cols),
				intParam("cells", "Live cells", c.Cells),
			},
		},
		{
			Name: "Pacing",
			Params: []core.Parameter{
				durationParam("pause_fast", "Fast pause", c.PauseFast),
				durationParam("pause_medium", "Medium pause", c.PauseMedium),
				durationParam("pause_slow", "Slow pause", c.PauseSlow),
				stringParam("stop_word", "Stop word", c.StopWord),
			},
		},
		{
			Name: "Grid files",
			Params: []core.Parameter{
				stringParam("empty", "Empty cell", string(c.Empty)),
				stringParam("comment", "Comment marker", string(c.Comment)),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func durationParam(key, label string, v time.Duration) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeDuration, Value: v.String()}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}

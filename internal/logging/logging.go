// Package logging builds the hclog loggers used across themestudio.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Options configures New.
type Options struct {
	Name string
	// Level is trace, debug, info, warn, error or off. Empty means warn.
	Level  string
	Output io.Writer
	JSON   bool
}

// ParseLevel resolves a level name. Empty means warn.
func ParseLevel(s string) (hclog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return hclog.Warn, nil
	}
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// New returns a logger writing to opts.Output, or stderr.
func New(opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	name := opts.Name
	if name == "" {
		name = "themestudio"
	}

	color := hclog.AutoColor
	if opts.JSON {
		color = hclog.ColorOff
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
		Color:      color,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// colorMode is the value of the --color flag.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

var _ pflag.Value = (*colorMode)(nil)

func (c *colorMode) String() string { return string(*c) }

func (c *colorMode) Set(v string) error {
	switch mode := colorMode(strings.ToLower(v)); mode {
	case colorAuto, colorAlways, colorNever:
		*c = mode
		return nil
	default:
		return fmt.Errorf("must be one of auto, always, never")
	}
}

func (c *colorMode) Type() string { return "when" }

// plain reports whether output written to out should carry no styling.
// In auto mode styling is used only for terminals, and NO_COLOR disables it.
func (c colorMode) plain(out any) bool {
	switch c {
	case colorAlways:
		return false
	case colorNever:
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := out.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

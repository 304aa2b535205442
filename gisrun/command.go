package gisrun

import (
	"fmt"
	"sort"
)

// Command describes one invocation of a platform command in the same grammar
// the descriptor package parses: key=value options, concatenated
// single-character flags, and the --overwrite switch.
type Command struct {
	// Name of the executable, e.g. "r.viewshed".
	Name string

	// Options rendered as key=value tokens.
	Options map[string]string

	// Flags holds the single-character flags, concatenated, e.g. "cb".
	Flags string

	// Overwrite appends --overwrite, permitting output maps to replace
	// existing ones.
	Overwrite bool
}

// Args renders the argument list. Option keys are emitted in sorted order so
// the rendering is deterministic.
func (c Command) Args() []string {
	keys := make([]string, 0, len(c.Options))
	for k := range c.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)+2)
	for _, k := range keys {
		args = append(args, fmt.Sprintf("%s=%s", k, c.Options[k]))
	}
	if c.Flags != "" {
		args = append(args, "-"+c.Flags)
	}
	if c.Overwrite {
		args = append(args, "--overwrite")
	}
	return args
}

// String renders the full command line for logs and error messages.
func (c Command) String() string {
	line := c.Name
	for _, arg := range c.Args() {
		line += " " + arg
	}
	return line
}

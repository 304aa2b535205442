package gisrun

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/vk/gisparse/internal/ctxlog"
	"github.com/vk/gisparse/session"
)

// Runner executes platform commands. The zero value is usable: commands
// inherit the process environment, stdout is discarded unless captured, and
// stderr is kept for the error message of a failing command.
type Runner struct {
	// Env holds extra KEY=VALUE entries appended to the process
	// environment, e.g. the platform's region or database overrides.
	Env []string

	// Stdout receives command output when set. Output ignores it and
	// captures instead.
	Stdout io.Writer

	// Stderr receives command diagnostics when set. When nil, stderr is
	// captured and included in the returned error on failure.
	Stderr io.Writer
}

// Run executes the command and waits for it to finish.
func (r *Runner) Run(ctx context.Context, cmd Command) error {
	_, err := r.start(ctx, cmd, r.Stdout)
	return err
}

// Output executes the command and returns its captured standard output with
// surrounding whitespace trimmed, the way scripts consume coordinate lists
// or map metadata from platform commands.
func (r *Runner) Output(ctx context.Context, cmd Command) (string, error) {
	var stdout bytes.Buffer
	if _, err := r.start(ctx, cmd, &stdout); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (r *Runner) start(ctx context.Context, cmd Command, stdout io.Writer) (*exec.Cmd, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Running platform command.", "command", cmd.String())

	execCmd := exec.CommandContext(ctx, cmd.Name, cmd.Args()...)
	execCmd.Env = append(os.Environ(), r.Env...)
	execCmd.Stdout = stdout

	var stderr bytes.Buffer
	if r.Stderr != nil {
		execCmd.Stderr = r.Stderr
	} else {
		execCmd.Stderr = &stderr
	}

	if err := execCmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("command %s failed: %w: %s", cmd.Name, err, msg)
		}
		return nil, fmt.Errorf("command %s failed: %w", cmd.Name, err)
	}
	return execCmd, nil
}

// RemoveFunc returns a cleanup function that removes a temporary map by
// running the platform's removal tool, for registration with a session:
//
//	tmp := sess.TempName("viewshed")
//	sess.TrackCleanup(tmp, runner.RemoveFunc("g.remove", "raster", tmp))
func (r *Runner) RemoveFunc(tool, kind, name string) session.CleanupFunc {
	return func(ctx context.Context) error {
		return r.Run(ctx, Command{
			Name:    tool,
			Options: map[string]string{"type": kind, "name": name},
			Flags:   "f",
		})
	}
}

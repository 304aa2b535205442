package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/gisparse/internal/ctxlog"
)

// CleanupFunc releases one temporary resource.
type CleanupFunc func(ctx context.Context) error

type tracked struct {
	label string
	fn    CleanupFunc
}

// Session tracks temporary resources created by one script invocation. The
// zero value is not usable; create instances with New. A Session is owned by
// a single goroutine and is not safe for concurrent use.
type Session struct {
	cleanups []tracked
	counter  int
	done     bool
}

// New creates an empty Session.
func New() *Session {
	return &Session{}
}

// TempName returns a process-unique name for a temporary map or file,
// derived from the prefix, the process id, and a per-session counter. The
// caller is responsible for registering a matching cleanup.
func (s *Session) TempName(prefix string) string {
	s.counter++
	return fmt.Sprintf("%s_tmp_%d_%d", prefix, os.Getpid(), s.counter)
}

// TrackCleanup registers a release function for a temporary resource. The
// label identifies the resource in logs and joined error messages.
// Registering after Cleanup has run is a programmer defect and panics.
func (s *Session) TrackCleanup(label string, fn CleanupFunc) {
	if s.done {
		panic(fmt.Sprintf("session: cleanup for %q registered after Cleanup ran", label))
	}
	s.cleanups = append(s.cleanups, tracked{label: label, fn: fn})
}

// Tracked returns the number of cleanups still pending.
func (s *Session) Tracked() int {
	if s.done {
		return 0
	}
	return len(s.cleanups)
}

// Cleanup releases every tracked resource in reverse registration order. A
// failing release does not stop the remaining ones; all failures are joined
// into the returned error. Cleanup runs at most once, later calls are no-ops.
// Callers defer it immediately after creating the Session so release is
// guaranteed whether the script body completes or fails.
func (s *Session) Cleanup(ctx context.Context) error {
	if s.done {
		return nil
	}
	s.done = true

	logger := ctxlog.FromContext(ctx)
	var errs []error
	for n := len(s.cleanups) - 1; n >= 0; n-- {
		c := s.cleanups[n]
		logger.Debug("Releasing temporary resource.", "label", c.label)
		if err := c.fn(ctx); err != nil {
			logger.Warn("Failed to release temporary resource.", "label", c.label, "error", err)
			errs = append(errs, fmt.Errorf("release %s: %w", c.label, err))
		}
	}
	s.cleanups = nil
	return errors.Join(errs...)
}

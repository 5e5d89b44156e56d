// Package voidship removes the vdso and vvar mappings from the current
// process's address space, forcing every clock read back onto the slow
// trap-based syscall path. Removing the fast path defeats timing-based
// side channels and lets harnesses observe how code behaves when cheap
// clock access is gone.
//
// The two public operations are destructive and process-wide:
// RemoveTimerMappings unmaps both regions permanently, and
// ReplaceTimerMappings additionally reinstalls them as inaccessible
// guard pages so any touch of the former ranges faults immediately.
//
// Callers must ensure nothing in the process reads the clock through
// the fast path during the mutation window; a thread that does so
// faults. In a Go process that precondition is essentially impossible
// to hold for long: the runtime itself services time.Now and its
// internal clocks through the vdso, so a successful call typically
// kills the process with SIGSEGV within milliseconds. That fault is
// the proof the hardening worked. Run these operations in a dedicated
// child process, never in one whose survival matters.
package voidship

import (
	"io"
	"log/slog"
	"sync"

	"github.com/insanitybit/void-ship/procmaps"
)

// ErrMappingsNotFound is returned when a scan finds fewer than both of
// the vdso and vvar mappings. Mutation is all-or-nothing: hardening
// only one of the two leaves the process in an asymmetric state that
// is worse than not hardening at all, so a missing label is a hard
// failure and no syscalls are attempted. Compare with errors.Is.
var ErrMappingsNotFound error = &procmaps.FormatError{Msg: "could not find vdso or vvar mappings"}

// mutationMu serializes RemoveTimerMappings and ReplaceTimerMappings
// against each other. It cannot protect other threads from the
// process-wide effect of the unmap; that remains the caller's
// precondition.
var mutationMu sync.Mutex

type options struct {
	logger *slog.Logger
}

// Option configures the package-level operations.
type Option func(*options)

// WithLogger routes progress logging to l. Logging is silent by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

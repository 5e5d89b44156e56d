//go:build !linux

package voidship

import "errors"

// The vdso and vvar mappings are a Linux construct. On other platforms
// both operations succeed without doing anything. This is a portability
// stub so callers can compile everywhere; it must not be read as "the
// process is hardened".

func RemoveTimerMappings(opts ...Option) error { return nil }

func ReplaceTimerMappings(opts ...Option) error { return nil }

// ProbeClock never faults off Linux; there is no vdso fast path to
// have removed.
func ProbeClock() error {
	return errors.New("clock probing is only meaningful on linux")
}

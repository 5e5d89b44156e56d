//go:build !linux

package vmem

import (
	"errors"

	"github.com/insanitybit/void-ship/procmaps"
)

// ErrUnsupported is returned on platforms without the Linux mapping
// syscalls. The orchestration layer no-ops before reaching vmem on
// those platforms; this surfaces only when vmem is called directly.
var ErrUnsupported = errors.New("vmem: not supported on this platform")

func Unmap(r procmaps.Region) error { return ErrUnsupported }

func Guard(r procmaps.Region) error { return ErrUnsupported }

//go:build linux

// Package vmem mutates mappings in the current process's own address
// space. Callers hold raw addresses as plain integers (procmaps.Region)
// and vmem converts them to pointers only at the syscall boundary; the
// addresses are never dereferenced from Go.
package vmem

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/insanitybit/void-ship/procmaps"
)

// Unmap asks the kernel to release the mapping covering exactly
// [r.Start, r.End). Unmapping an already-released range still succeeds;
// the kernel does not require a mapping to exist.
func Unmap(r procmaps.Region) error {
	if err := checkRegion(r); err != nil {
		return err
	}
	if err := unix.MunmapPtr(unsafe.Pointer(uintptr(r.Start)), uintptr(r.Size())); err != nil {
		return os.NewSyscallError("munmap", err)
	}
	return nil
}

// Guard installs an inaccessible anonymous private mapping at exactly
// r.Start for r.Size() bytes. MAP_FIXED means the kernel either places
// the mapping in the hole the caller just vacated or fails; it never
// silently relocates. Guarding a range that is still occupied clobbers
// whatever was there, so callers unmap first.
func Guard(r procmaps.Region) error {
	if err := checkRegion(r); err != nil {
		return err
	}
	_, err := unix.MmapPtr(-1, 0, unsafe.Pointer(uintptr(r.Start)), uintptr(r.Size()),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_FIXED)
	if err != nil {
		return os.NewSyscallError("mmap", err)
	}
	return nil
}

// checkRegion rejects regions the parser should never produce. A
// zero-size munmap or mmap is meaningless and EINVALs in the kernel;
// failing here names the region instead of an opaque errno.
func checkRegion(r procmaps.Region) error {
	if r.End <= r.Start {
		return &procmaps.FormatError{Msg: "empty or inverted region " + r.String()}
	}
	return nil
}

//go:build linux

package voidship

import (
	"errors"
	"time"

	"github.com/insanitybit/void-ship/procmaps"
	"github.com/insanitybit/void-ship/vmem"
)

// RemoveTimerMappings unmaps the vdso and vvar mappings. Discovery and
// mutation happen in one pass over current process state: a fresh scan
// of /proc/self/maps, then munmap of the vdso followed by the vvar.
//
// Both mappings must be present or nothing is touched
// (ErrMappingsNotFound). On any error after the first unmap the address
// space is in an unspecified intermediate state; the recommended caller
// response is to abort the process, since the hardening property cannot
// be partially guaranteed.
func RemoveTimerMappings(opts ...Option) error {
	mutationMu.Lock()
	defer mutationMu.Unlock()

	o := newOptions(opts)

	m, err := discover(o)
	if err != nil {
		return err
	}
	return unmapBoth(m, o)
}

// ReplaceTimerMappings unmaps the vdso and vvar mappings and then
// reinstalls each range as an inaccessible guard page: an anonymous
// private PROT_NONE mapping fixed at the original address and size.
// Any later read, write, or execute within the former ranges faults
// immediately instead of landing in whatever the kernel might have
// placed there next.
//
// Failure semantics match RemoveTimerMappings: all-or-nothing
// discovery, first error wins, and an error return means the address
// space is in an unspecified intermediate state.
func ReplaceTimerMappings(opts ...Option) error {
	mutationMu.Lock()
	defer mutationMu.Unlock()

	o := newOptions(opts)

	m, err := discover(o)
	if err != nil {
		return err
	}
	if err := unmapBoth(m, o); err != nil {
		return err
	}

	o.logger.Debug("guarding vdso", "region", m.VDSO)
	if err := guardRegion(*m.VDSO); err != nil {
		return err
	}
	o.logger.Debug("guarding vvar", "region", m.VVar)
	if err := guardRegion(*m.VVar); err != nil {
		return err
	}
	return nil
}

// ProbeClock deliberately exercises the fast-clock read path through
// the runtime. After a successful RemoveTimerMappings or
// ReplaceTimerMappings the read faults and the process dies with
// SIGSEGV, so ProbeClock only ever returns if the vdso is still
// mapped; the returned error reports that the hardening did not take.
// Call this only from verification tooling that expects to die.
func ProbeClock() error {
	_ = time.Now()
	return errors.New("clock read succeeded; the vdso fast path is still mapped")
}

// Seams for the orchestration tests, which must exercise the
// all-or-nothing gate without mutating the test process's own address
// space.
var (
	scanMappings = procmaps.Scan
	unmapRegion  = vmem.Unmap
	guardRegion  = vmem.Guard
)

func discover(o options) (procmaps.Mappings, error) {
	m, err := scanMappings()
	if err != nil {
		return procmaps.Mappings{}, err
	}
	if !m.Complete() {
		return procmaps.Mappings{}, ErrMappingsNotFound
	}
	o.logger.Debug("discovered timer mappings", "vdso", m.VDSO, "vvar", m.VVar)
	return m, nil
}

// unmapBoth releases the vdso first and the vvar second. The order only
// matters for failure attribution; the regions are independent.
func unmapBoth(m procmaps.Mappings, o options) error {
	o.logger.Debug("unmapping vdso", "region", m.VDSO)
	if err := unmapRegion(*m.VDSO); err != nil {
		return err
	}
	o.logger.Debug("unmapping vvar", "region", m.VVar)
	if err := unmapRegion(*m.VVar); err != nil {
		return err
	}
	return nil
}

//go:build e2e && linux

// Package e2e exercises the destructive acceptance scenarios. Removing
// the vdso is fatal to the process that does it, so every mutating
// scenario runs the voidship CLI in a child process and asserts on its
// exit state and output.
package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var voidshipBin string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "voidship-e2e-")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	voidshipBin = filepath.Join(dir, "voidship")
	cmd := exec.Command("go", "build", "-o", voidshipBin, "./cmd/voidship")
	cmd.Dir = ".."
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "build voidship: %v\n%s", err, out)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// runVoidship runs the CLI in a child process and returns its combined
// output and exit error (nil on exit 0).
func runVoidship(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command(voidshipBin, args...)
	out, err := cmd.CombinedOutput()
	t.Logf("voidship %s:\n%s", strings.Join(args, " "), out)
	return string(out), err
}

// requireTimerMappings skips the test when the kernel exposes no vdso
// or vvar mapping; the hardening scenarios need both present.
func requireTimerMappings(t *testing.T) {
	t.Helper()

	out, err := runVoidship(t, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if strings.Contains(out, "not mapped") {
		t.Skip("kernel does not expose both timer mappings")
	}
}

// requireFatalClockFault asserts that a child died proving the fast
// clock path is gone: either its own post-mutation report printed
// before the runtime next read the clock, or the runtime faulted
// first. Both outcomes demonstrate the mappings were removed; a child
// that reports the vdso still mapped failed.
func requireFatalClockFault(t *testing.T, out string, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("child survived its clock probe; the vdso fast path is still mapped")
	}
	if strings.Contains(out, "still mapped") {
		t.Fatalf("hardening did not take:\n%s", out)
	}

	faulted := strings.Contains(out, "SIGSEGV") ||
		strings.Contains(out, "unexpected fault address")
	reportedGone := strings.Contains(out, "vdso mapped: false") &&
		strings.Contains(out, "vvar mapped: false")
	if !faulted && !reportedGone {
		t.Fatalf("no evidence the mappings were removed:\n%s", out)
	}
}

//go:build e2e && linux

package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusReportsMappings(t *testing.T) {
	out, err := runVoidship(t, "status")
	require.NoError(t, err)
	require.Contains(t, out, "vdso:")
	require.Contains(t, out, "vvar:")
}

func TestRemoveDefeatsFastClock(t *testing.T) {
	requireTimerMappings(t)

	out, err := runVoidship(t, "verify", "--i-know-this-kills-the-process")
	requireFatalClockFault(t, out, err)
}

func TestReplaceInstallsGuardPages(t *testing.T) {
	requireTimerMappings(t)

	// With guard pages the former ranges are occupied but
	// inaccessible; the clock probe faults on the PROT_NONE page
	// instead of an unmapped hole.
	out, err := runVoidship(t, "verify", "--replace", "--i-know-this-kills-the-process")
	requireFatalClockFault(t, out, err)
}

func TestVerifyRefusesWithoutForce(t *testing.T) {
	requireTimerMappings(t)

	out, err := runVoidship(t, "verify")
	require.Error(t, err)
	require.Contains(t, out, "--i-know-this-kills-the-process")

	// Refusal must not have mutated anything.
	after, err := runVoidship(t, "status")
	require.NoError(t, err)
	require.False(t, strings.Contains(after, "not mapped"),
		"a refused verify must leave the mappings alone:\n%s", after)
}

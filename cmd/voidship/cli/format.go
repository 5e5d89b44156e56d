package cli

import (
	"fmt"
	"io"

	"github.com/insanitybit/void-ship/procmaps"
)

func reportMappings(w io.Writer, m procmaps.Mappings) {
	fmt.Fprintf(w, "vdso: %s\n", describe(m.VDSO))
	fmt.Fprintf(w, "vvar: %s\n", describe(m.VVar))
}

func describe(r *procmaps.Region) string {
	if r == nil {
		return "not mapped"
	}
	return r.String()
}

// reportRemaining re-scans the maps after a mutation and prints which
// labels are still present. The lines are stable so harnesses can
// assert on them.
func reportRemaining(w io.Writer) error {
	m, err := procmaps.Scan()
	if err != nil {
		return fmt.Errorf("re-scan after mutation: %w", err)
	}
	fmt.Fprintf(w, "vdso mapped: %t\n", m.VDSO != nil)
	fmt.Fprintf(w, "vvar mapped: %t\n", m.VVar != nil)
	return nil
}

package cli

import (
	"fmt"
	"os"

	voidship "github.com/insanitybit/void-ship"
)

// RemoveCmd unmaps the vdso and vvar mappings of this process.
type RemoveCmd struct{}

// Run executes the remove command. After a successful unmap the Go
// runtime's next clock read faults, so the process may die with
// SIGSEGV before or just after the report below prints; either
// outcome proves the mappings are gone.
func (c *RemoveCmd) Run(cli *CLI) error {
	logger, err := cli.Logger()
	if err != nil {
		return err
	}

	if err := voidship.RemoveTimerMappings(voidship.WithLogger(logger)); err != nil {
		return fmt.Errorf("remove timer mappings: %w", err)
	}
	return reportRemaining(os.Stdout)
}

package cli

import (
	"fmt"
	"os"

	voidship "github.com/insanitybit/void-ship"
)

// ReplaceCmd unmaps the vdso and vvar mappings and reinstalls each
// range as an inaccessible guard page.
type ReplaceCmd struct{}

// Run executes the replace command. The same caveat as remove applies:
// a fault shortly after success is the expected outcome.
func (c *ReplaceCmd) Run(cli *CLI) error {
	logger, err := cli.Logger()
	if err != nil {
		return err
	}

	if err := voidship.ReplaceTimerMappings(voidship.WithLogger(logger)); err != nil {
		return fmt.Errorf("replace timer mappings: %w", err)
	}
	return reportRemaining(os.Stdout)
}

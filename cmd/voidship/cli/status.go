package cli

import (
	"os"

	"github.com/insanitybit/void-ship/procmaps"
)

// StatusCmd reports the current vdso and vvar mappings without
// touching anything.
type StatusCmd struct{}

// Run executes the status command.
func (c *StatusCmd) Run(cli *CLI) error {
	m, err := procmaps.Scan()
	if err != nil {
		return err
	}
	reportMappings(os.Stdout, m)
	return nil
}

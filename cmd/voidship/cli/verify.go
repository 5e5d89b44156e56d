package cli

import (
	"errors"
	"fmt"
	"os"

	voidship "github.com/insanitybit/void-ship"
)

// VerifyCmd removes the mappings and then deliberately reads the fast
// clock. Success is the process dying with SIGSEGV; returning from the
// probe means the vdso survived and verification failed.
type VerifyCmd struct {
	Replace bool `help:"Use guard pages instead of a plain unmap."`
	Force   bool `name:"i-know-this-kills-the-process" help:"Required. Verification faults the process on success."`
}

// Run executes the verify command.
func (c *VerifyCmd) Run(cli *CLI) error {
	if !c.Force {
		return errors.New("verify deliberately faults the process; pass --i-know-this-kills-the-process to proceed")
	}

	logger, err := cli.Logger()
	if err != nil {
		return err
	}

	op := voidship.RemoveTimerMappings
	if c.Replace {
		op = voidship.ReplaceTimerMappings
	}
	if err := op(voidship.WithLogger(logger)); err != nil {
		return fmt.Errorf("harden: %w", err)
	}

	if err := reportRemaining(os.Stdout); err != nil {
		return err
	}

	// Expected to fault here and never return.
	return voidship.ProbeClock()
}

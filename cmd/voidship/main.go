// voidship removes or guards the vdso and vvar mappings of its own
// process. The mutating commands are destructive by design: once the
// vdso is gone the Go runtime's next clock read faults, so expect the
// process to die with SIGSEGV shortly after a successful remove or
// replace. That fault is the point.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/insanitybit/void-ship/cmd/voidship/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c, cli.KongOptions()...)
	if err := ctx.Run(&c); err != nil {
		fmt.Fprintf(os.Stderr, "voidship: %v\n", err)
		os.Exit(1)
	}
}

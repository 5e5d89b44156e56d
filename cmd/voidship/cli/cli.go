package cli

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/insanitybit/void-ship/logging"
)

// CLI is the root command structure for voidship.
type CLI struct {
	Log       string `name:"log" help:"Log spec (e.g. 'info,procmaps=debug')." env:"VOIDSHIP_LOG"`
	LogFormat string `name:"log-format" help:"Log format: text or json." default:"text"`

	Status  StatusCmd  `cmd:"" help:"Show the current vdso and vvar mappings (read-only)."`
	Remove  RemoveCmd  `cmd:"" help:"Unmap the vdso and vvar mappings of this process."`
	Replace ReplaceCmd `cmd:"" help:"Unmap the mappings and reinstall them as inaccessible guard pages."`
	Verify  VerifyCmd  `cmd:"" help:"Remove the mappings, then probe the fast clock; dies with SIGSEGV on success."`
}

// KongOptions returns the Kong configuration options for the CLI.
func KongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("voidship"),
		kong.Description("Remove or guard the vdso and vvar mappings of this process."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
}

// Logger creates a logger for CLI commands. The spec comes from --log
// or VOIDSHIP_LOG; commands default to warn for quieter output.
func (c *CLI) Logger() (*slog.Logger, error) {
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}

	spec := c.Log
	if spec == "" {
		spec = "warn"
	}

	return logging.New(logging.Options{
		CLISpec: spec,
		Format:  format,
	})
}

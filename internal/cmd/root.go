package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for coreutils
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coreutils",
		Short: "Fast and flexible single-purpose system utilities",
		Long: `A collection of small single-purpose utilities: directory listing,
user identity, working directory, and system information printers.

Each utility is a subcommand with its own flags, e.g.:

  coreutils ls -lR --sort size /var/log
  coreutils whoami -v
  coreutils uname -a`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewLsCommand())
	cmd.AddCommand(NewWhoamiCommand())
	cmd.AddCommand(NewPwdCommand())
	cmd.AddCommand(NewUnameCommand())
	cmd.AddCommand(NewTrueCommand())
	cmd.AddCommand(NewFalseCommand())

	return cmd
}

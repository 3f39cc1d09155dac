package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewPwdCommand creates the pwd subcommand
func NewPwdCommand() *cobra.Command {
	var (
		logical  bool
		physical bool
	)

	cmd := &cobra.Command{
		Use:   "pwd",
		Short: "Print the current working directory",
		Long: `Print the full path of the current working directory.

With -L, the PWD environment variable is used if set, even if it contains
symlinks. With -P (the default), all symlinks are resolved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// -P overrides -L when both are given, matching the flag order
			// semantics of the standalone tool.
			if logical && !physical {
				if pwd := os.Getenv("PWD"); pwd != "" {
					fmt.Fprintln(cmd.OutOrStdout(), pwd)
					return nil
				}
				// PWD unset: fall through to the physical path.
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine working directory: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cwd)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&logical, "logical", "L", false, "use PWD from environment, even if it contains symlinks")
	cmd.Flags().BoolVarP(&physical, "physical", "P", false, "avoid all symlinks (default)")

	return cmd
}

package cmd

import (
	"fmt"
	"runtime"

	"github.com/harrison/coreutils/internal/sysinfo"
	"github.com/spf13/cobra"
)

// NewWhoamiCommand creates the whoami subcommand
func NewWhoamiCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the effective user name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sysinfo.CurrentIdentity()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, id.Username)

			if verbose {
				fmt.Fprintf(out, "User ID (UID): %d\n", id.UID)
				fmt.Fprintf(out, "Effective User ID (EUID): %d\n", id.EUID)
				fmt.Fprintf(out, "Group ID (GID): %d\n", id.GID)
				fmt.Fprintf(out, "Effective Group ID (EGID): %d\n", id.EGID)
				fmt.Fprintf(out, "Operating System: %s\n", runtime.GOOS)
				fmt.Fprintf(out, "Architecture: %s\n", runtime.GOARCH)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "display additional identity information")

	return cmd
}

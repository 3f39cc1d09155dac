package cmd

import (
	"github.com/spf13/cobra"
)

// NewTrueCommand creates the true subcommand: do nothing, successfully.
func NewTrueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "true",
		Short: "Exit with a status code indicating success",
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, args []string) {},
	}
}

// NewFalseCommand creates the false subcommand: do nothing, unsuccessfully.
func NewFalseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "false",
		Short: "Exit with a status code indicating failure",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exit(1)
		},
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/harrison/coreutils/internal/sysinfo"
	"github.com/spf13/cobra"
)

// NewUnameCommand creates the uname subcommand
func NewUnameCommand() *cobra.Command {
	var (
		all           bool
		kernelName    bool
		nodeName      bool
		kernelRelease bool
		kernelVersion bool
		machine       bool
		operatingSys  bool
	)

	cmd := &cobra.Command{
		Use:   "uname",
		Short: "Print system information",
		Long: `Print system information. With no options, prints the kernel name.

Fields are printed in the fixed order: kernel name, nodename, kernel
release, kernel version, machine, operating system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := sysinfo.Uname()
			if err != nil {
				return err
			}

			noFlags := !all && !kernelName && !nodeName && !kernelRelease &&
				!kernelVersion && !machine && !operatingSys
			if noFlags {
				kernelName = true
			}

			var parts []string
			if all || kernelName {
				parts = append(parts, info.KernelName)
			}
			if all || nodeName {
				parts = append(parts, info.NodeName)
			}
			if all || kernelRelease {
				parts = append(parts, info.KernelRelease)
			}
			if all || kernelVersion {
				parts = append(parts, info.KernelVersion)
			}
			if all || machine {
				parts = append(parts, info.Machine)
			}
			if all || operatingSys {
				parts = append(parts, info.OperatingSystem)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolVarP(&all, "all", "a", false, "print all information")
	flags.BoolVarP(&kernelName, "kernel-name", "s", false, "print the kernel name")
	flags.BoolVarP(&nodeName, "nodename", "n", false, "print the network node hostname")
	flags.BoolVarP(&kernelRelease, "kernel-release", "r", false, "print the kernel release")
	flags.BoolVarP(&kernelVersion, "kernel-version", "v", false, "print the kernel version")
	flags.BoolVarP(&machine, "machine", "m", false, "print the machine hardware name")
	flags.BoolVarP(&operatingSys, "operating-system", "o", false, "print the operating system")

	return cmd
}

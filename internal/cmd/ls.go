package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/coreutils/internal/config"
	"github.com/harrison/coreutils/internal/listing"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// exit is indirected so tests can intercept failure exits.
var exit = os.Exit

// NewLsCommand creates the ls subcommand
func NewLsCommand() *cobra.Command {
	var (
		all           bool
		long          bool
		humanReadable bool
		sortKey       string
		reverse       bool
		recursive     bool
		colorMode     string
	)

	cmd := &cobra.Command{
		Use:   "ls [path...]",
		Short: "List directory contents",
		Long: `List the entries of one or more directories (default: the current
directory), with optional hidden-file filtering, sorting, long format,
human-readable sizes, and recursive descent.

Defaults for the flags below may be set in the [ls] section of
$XDG_CONFIG_HOME/coreutils/config.yaml; explicit flags always win.

Examples:
  coreutils ls
  coreutils ls -la /etc
  coreutils ls -lHR --sort size --color never /var/log /tmp

Exit code: 0 on success, 1 if a requested path cannot be listed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.LoadConfig(config.DefaultPath())
			if err != nil {
				return err
			}

			// Config-file values apply only where the flag was not
			// given explicitly.
			flags := cmd.Flags()
			if !flags.Changed("all") {
				all = fileCfg.Ls.All
			}
			if !flags.Changed("long") {
				long = fileCfg.Ls.Long
			}
			if !flags.Changed("human-readable") {
				humanReadable = fileCfg.Ls.HumanReadable
			}
			if !flags.Changed("sort") {
				sortKey = fileCfg.Ls.Sort
			}
			if !flags.Changed("reverse") {
				reverse = fileCfg.Ls.Reverse
			}
			if !flags.Changed("color") {
				colorMode = fileCfg.Ls.Color
			}

			key, err := listing.ParseSortKey(sortKey)
			if err != nil {
				return err
			}

			useColor, err := colorEnabled(colorMode, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cfg := listing.Config{
				ShowHidden:    all,
				LongFormat:    long,
				HumanReadable: humanReadable,
				SortKey:       key,
				Reverse:       reverse,
				Recursive:     recursive,
				UseColor:      useColor,
			}

			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			lister := listing.NewLister(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err := lister.Run(paths); err != nil {
				// Run has already reported the failure on stderr.
				exit(1)
			}
			return nil
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolVarP(&all, "all", "a", false, "show hidden files")
	flags.BoolVarP(&long, "long", "l", false, "use long listing format")
	flags.BoolVarP(&humanReadable, "human-readable", "H", false, "print human readable file sizes")
	flags.StringVarP(&sortKey, "sort", "s", "name", "sort by name, modification time, or size")
	flags.BoolVarP(&reverse, "reverse", "r", false, "reverse sort order")
	flags.BoolVarP(&recursive, "recursive", "R", false, "list subdirectories recursively")
	flags.StringVar(&colorMode, "color", "auto", "when to use color: never, auto, or always")

	return cmd
}

// colorEnabled resolves a --color mode to the boolean the listing core
// consumes. "auto" means color only when output goes to a terminal.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "never":
		return false, nil
	case "always":
		return true, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && isatty.IsTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (must be never, auto, or always)", mode)
	}
}

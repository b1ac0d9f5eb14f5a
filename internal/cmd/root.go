package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for sgrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sgrep [flags] <pattern> <path>",
		Short: "Search files for lines matching a pattern",
		Long: `sgrep prints the lines of files under <path> that contain <pattern>.

A file is searched directly. A directory has its immediate entries searched;
use --recursive to descend into nested directories. Symbolic links are
skipped unless --followlinks is given, and binary files are always skipped.

Matches are written to stdout. Errors are written to stderr; warnings too,
when --warnings is set.

Defaults can be stored in .sgrep.yaml in the working directory or in the
home directory. Command-line flags override the file.

Examples:
  sgrep TODO main.go                 # search one file
  sgrep -rl TODO ./internal          # recurse, print path:line: prefixes
  sgrep -ie 'fix(me)?' .             # -i is ignored with --regex
  sgrep -e '(?i)fix(me)?' .          # case-insensitive expression
  sgrep -rft needle ~/src            # follow links, relative paths`,
		Args:    cobra.ExactArgs(2),
		Version: Version,
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("recursive", "r", false, "Search nested directories")
	cmd.Flags().BoolP("location", "l", false, "Prefix matches with path:line:")
	cmd.Flags().BoolP("followlinks", "f", false, "Follow symbolic links")
	cmd.Flags().BoolP("insensitive", "i", false, "Case-insensitive search (ignored with --regex)")
	cmd.Flags().BoolP("warnings", "w", false, "Show warnings")
	cmd.Flags().BoolP("relative", "t", false, "Print paths relative to the working directory")
	cmd.Flags().BoolP("regex", "e", false, "Interpret the pattern as a regular expression")
	cmd.Flags().BoolP("color", "c", false, "Colorize locations, warnings and errors")
	cmd.Flags().String("config", "", "Path to config file (default: ./.sgrep.yaml, then ~/.sgrep.yaml)")
	cmd.Flags().String("log-level", "", "Trace output level: trace, debug, info, warn, error (default: warn)")

	return cmd
}

// Package cli implements the chlog command tree on top of cobra.
package cli

import (
	stderrors "errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/errors"
	"github.com/raveheart1/chlog/internal/git"
	"github.com/raveheart1/chlog/internal/version"
)

// Help group IDs. Commands register under one of these so --help shows them
// grouped instead of one flat list.
const (
	GroupChangelog     = "changelog"
	GroupConfiguration = "configuration"
)

var (
	configFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Changelog generator for conventional commits",
	Long: `chlog renders changelog entries from conventional commits and merges
them into CHANGELOG.md without destroying prior content.

Commits are grouped into titled sections by semantic type (feat, fix, ...)
in the order the type table defines. New entries are spliced into the
existing file around the '- - -' separator line: prepended above prior
releases, appended below them, or the whole file regenerated.`,
	Example: `  chlog generate                      # HEAD range, prepend into CHANGELOG.md
  chlog generate --tag v1.2.0         # Title the entry with a tag name
  chlog generate --mode replace       # Regenerate the file from scratch
  chlog generate --stdout --colored   # Preview in the terminal
  chlog types                         # Show the active type table`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(log.Printf)
		}
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a config file (overrides project config)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// Execute runs the root command, rendering structured errors to stderr
// before returning the error to main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

// printError writes a structured error with its hints, falling back to a
// plain one-liner for errors outside the CLI taxonomy.
func printError(err error) {
	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		fmt.Fprint(os.Stderr, errors.Format(cliErr))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Configuration:
			return ExitConfigError
		}
	}
	return ExitFailure
}

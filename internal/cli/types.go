package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/errors"
)

var typesPlainFlag bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the active commit-type table",
	Long: `Types prints the commit-type table in effect for this run, in the order
sections will appear in rendered output. The table comes from configuration;
without one, the built-in table is shown.

The default output is a styled listing. --plain emits the table as YAML in
the shape the 'types' key of .chlog/config.yml accepts.`,
	Example: `  chlog types
  chlog types --plain >> .chlog/config.yml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTypes,
}

func init() {
	typesCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().BoolVar(&typesPlainFlag, "plain", false, "Plain YAML output without formatting")
}

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return errors.Wrap(err, errors.Configuration,
			"Check .chlog/config.yml for syntax or value errors")
	}

	if typesPlainFlag {
		return printPlainTypes(cmd.OutOrStdout(), cfg.Types)
	}

	printStyledTypes(cmd.OutOrStdout(), cfg.Types)
	return nil
}

// printPlainTypes emits the table as YAML for scripting and config reuse.
func printPlainTypes(w io.Writer, types []config.TypeMapping) error {
	out, err := yaml.Marshal(map[string][]config.TypeMapping{"types": types})
	if err != nil {
		return errors.Wrapf(err, errors.Runtime, "marshalling type table")
	}

	fmt.Fprint(w, string(out))
	return nil
}

// printStyledTypes writes a two-column listing, one row per type.
func printStyledTypes(w io.Writer, types []config.TypeMapping) {
	typeStyle := color.New(color.FgYellow).SprintFunc()
	titleStyle := color.New(color.Bold).SprintFunc()

	width := 0
	for _, m := range types {
		if len(m.Type) > width {
			width = len(m.Type)
		}
	}

	for _, m := range types {
		pad := width - len(m.Type)
		fmt.Fprintf(w, "%s%*s  %s\n", typeStyle(m.Type), pad, "", titleStyle(m.Title))
	}
}

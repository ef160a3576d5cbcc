package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/errors"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default project configuration",
	Long: `Init creates .chlog/config.yml with a fully commented default
configuration: changelog path, merge mode, repository URL, and the
commit-type table.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	initCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !initForceFlag {
		return errors.New(errors.Argument,
			fmt.Sprintf("config file %s already exists", path),
			"Use --force to overwrite it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.Runtime, "creating %s", config.ProjectConfigDir())
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.Wrapf(err, errors.Runtime, "writing %s", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/commit"
	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/errors"
	"github.com/raveheart1/chlog/internal/git"
)

var (
	generateFromFlag   string
	generateToFlag     string
	generateTagFlag    string
	generateDateFlag   string
	generateModeFlag   string
	generateOutFlag    string
	generateStdoutFlag bool
	generateColorFlag  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a changelog entry for a commit range and merge it into the changelog",
	Long: `Generate renders one changelog entry from the conventional commits in a
range and merges it into the changelog file.

The range defaults to everything reachable from HEAD; use --from/--to to
narrow it. The entry is titled with --tag when given, otherwise with the
short from..to range. Merge behavior follows --mode (or changelog.mode from
config): prepend places the entry above prior releases, append below them,
and replace regenerates the whole file.

Examples:
  chlog generate
  chlog generate --from 5375e15 --to HEAD
  chlog generate --tag v1.2.0 --mode prepend
  chlog generate --stdout --colored`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	generateCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFromFlag, "from", "", "Lower range boundary (revision, exclusive; default: full history including the root commit)")
	generateCmd.Flags().StringVar(&generateToFlag, "to", "HEAD", "Upper range boundary (revision, inclusive)")
	generateCmd.Flags().StringVar(&generateTagFlag, "tag", "", "Tag name used as the entry title")
	generateCmd.Flags().StringVar(&generateDateFlag, "date", "", "Entry date (default: today, YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&generateModeFlag, "mode", "", "Merge strategy: replace | prepend | append (default: from config)")
	generateCmd.Flags().StringVar(&generateOutFlag, "output", "", "Changelog file path (default: from config)")
	generateCmd.Flags().BoolVar(&generateStdoutFlag, "stdout", false, "Print the entry instead of writing the file")
	generateCmd.Flags().BoolVar(&generateColorFlag, "colored", false, "ANSI-style commit lines (requires --stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateColorFlag && !generateStdoutFlag {
		return errors.New(errors.Argument,
			"--colored only applies to terminal output",
			"Add --stdout to preview the entry instead of writing the file")
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		return errors.Wrap(err, errors.Configuration,
			"Check .chlog/config.yml for syntax or value errors",
			"Run 'chlog init --force' to restore the default config")
	}

	repo, err := git.Open("")
	if err != nil {
		return errors.Wrap(err, errors.Repository,
			"Run chlog inside a git repository")
	}

	release, err := buildRelease(cmd, repo)
	if err != nil {
		return err
	}

	repoURL, err := resolveRepoURL(cfg, repo)
	if err != nil {
		return err
	}

	renderer := changelog.Renderer{Table: cfg.TypeTable(), RepoURL: repoURL}

	if generateStdoutFlag {
		out, renderErr := renderer.Render(release, generateColorFlag)
		if renderErr != nil {
			return wrapRenderError(renderErr)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	fragment, err := renderer.Render(release, false)
	if err != nil {
		return wrapRenderError(err)
	}

	return mergeFragment(cmd, cfg, fragment)
}

// buildRelease resolves the range boundaries and collects the commits
// between them into a fresh release descriptor.
func buildRelease(cmd *cobra.Command, repo *git.Repository) (*changelog.Release, error) {
	to, err := repo.ResolveRevision(generateToFlag)
	if err != nil {
		return nil, errors.Wrap(err, errors.Repository,
			"Check the --to revision exists in this repository")
	}

	// Without --from, the range is the whole history; the root commit is
	// part of it, so the exclusive-boundary walk does not apply. The root
	// id still anchors the entry title.
	var from string
	var walk func(context.Context) ([]commit.Commit, error)
	if generateFromFlag != "" {
		from, err = repo.ResolveRevision(generateFromFlag)
		if err != nil {
			return nil, errors.Wrap(err, errors.Repository,
				"Check the --from revision exists in this repository")
		}
		walk = func(ctx context.Context) ([]commit.Commit, error) {
			return repo.CommitsInRange(ctx, from, to)
		}
	} else {
		from, err = repo.FirstCommit()
		if err != nil {
			return nil, errors.Wrap(err, errors.Repository)
		}
		walk = func(ctx context.Context) ([]commit.Commit, error) {
			return repo.AllCommits(ctx, to)
		}
	}

	commits, err := collectCommits(cmd, walk)
	if err != nil {
		return nil, errors.Wrap(err, errors.Repository)
	}

	date := generateDateFlag
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	return &changelog.Release{
		From:    from,
		To:      to,
		Date:    date,
		TagName: generateTagFlag,
		Commits: commits,
	}, nil
}

// collectCommits runs the history walk, showing a spinner when stderr is a
// terminal since large histories can take a moment.
func collectCommits(cmd *cobra.Command, walk func(context.Context) ([]commit.Commit, error)) ([]commit.Commit, error) {
	var sp *spinner.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(cmd.ErrOrStderr()))
		sp.Suffix = " Collecting commits..."
		sp.Start()
		defer sp.Stop()
	}

	return walk(cmd.Context())
}

// resolveRepoURL prefers the configured repository URL and falls back to the
// origin remote.
func resolveRepoURL(cfg *config.Configuration, repo *git.Repository) (string, error) {
	if cfg.Repository.URL != "" {
		return cfg.Repository.URL, nil
	}

	url, err := repo.RemoteURL()
	if err != nil {
		return "", errors.Wrap(err, errors.Configuration,
			"Set repository.url in .chlog/config.yml",
			"Or add an 'origin' remote to the repository")
	}
	return url, nil
}

// mergeFragment splices the rendered fragment into the changelog file.
func mergeFragment(cmd *cobra.Command, cfg *config.Configuration, fragment string) error {
	modeName := generateModeFlag
	if modeName == "" {
		modeName = cfg.Changelog.Mode
	}
	mode, err := changelog.ParseWriteMode(modeName)
	if err != nil {
		return errors.Wrap(err, errors.Argument)
	}

	path := generateOutFlag
	if path == "" {
		path = cfg.Changelog.Path
	}

	writer := &changelog.Writer{Path: path, Mode: mode}
	if err := writer.Write(fragment); err != nil {
		return wrapMergeError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Changelog written to %s\n", path)
	return nil
}

// wrapRenderError attaches remediation to renderer failures.
func wrapRenderError(err error) error {
	var mismatch *changelog.ConfigMismatchError
	if stderrors.As(err, &mismatch) {
		return errors.Wrap(err, errors.Configuration,
			"Add the missing types to the 'types' table in .chlog/config.yml")
	}
	return errors.Wrap(err, errors.Runtime)
}

// wrapMergeError attaches remediation to merge failures.
func wrapMergeError(err error) error {
	var missing *changelog.MissingSeparatorError
	if stderrors.As(err, &missing) {
		return errors.Wrap(err, errors.Runtime,
			fmt.Sprintf("Restore a %q line to %s, or rerun with --mode replace", missing.Separator, missing.Path))
	}
	return errors.Wrap(err, errors.Runtime)
}

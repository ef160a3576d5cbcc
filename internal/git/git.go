// Package git retrieves parsed commits from the local repository using the
// go-git library, covering the range walks, revision resolution, and
// remote-URL discovery the changelog generator needs. No git CLI is required.
package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/raveheart1/chlog/internal/commit"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it is a no-op; set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations. Pass nil to
// disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an open git repository.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository containing path, traversing parent directories
// to find the .git root. An empty path means the current directory.
func Open(path string) (*Repository, error) {
	if path == "" {
		path = "."
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repository{repo: repo}, nil
}

// ResolveRevision resolves a revision expression (full or abbreviated hash,
// tag, branch, HEAD) to a full commit id.
func (r *Repository) ResolveRevision(rev string) (string, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolving revision %q: %w", rev, err)
	}

	logDebug("[git] resolved %q to %s", rev, h.String())
	return h.String(), nil
}

// CommitsInRange returns the commits reachable from to and newer than from,
// newest first, with each message classified into conventional commit
// fields. Commits whose messages do not follow the conventional shape are
// skipped; classification is not validation. The from commit itself is
// excluded from the range.
func (r *Repository) CommitsInRange(ctx context.Context, from, to string) ([]commit.Commit, error) {
	commits, err := r.walkCommits(ctx, plumbing.NewHash(from), to)
	if err != nil {
		return nil, err
	}

	logDebug("[git] collected %d commits in %s..%s", len(commits), from, to)
	return commits, nil
}

// AllCommits returns every commit reachable from to, newest first, the root
// commit included. This is the full-history variant of CommitsInRange, which
// always excludes its lower boundary.
func (r *Repository) AllCommits(ctx context.Context, to string) ([]commit.Commit, error) {
	commits, err := r.walkCommits(ctx, plumbing.ZeroHash, to)
	if err != nil {
		return nil, err
	}

	logDebug("[git] collected %d commits reachable from %s", len(commits), to)
	return commits, nil
}

// walkCommits collects classified commits from to down to (but not
// including) stop. A zero stop hash walks the whole history.
func (r *Repository) walkCommits(ctx context.Context, stop plumbing.Hash, to string) ([]commit.Commit, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{From: plumbing.NewHash(to)})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", to, err)
	}
	defer iter.Close()

	var commits []commit.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !stop.IsZero() && c.Hash == stop {
			return storer.ErrStop
		}

		msg, ok := commit.Classify(c.Message)
		if !ok {
			logDebug("[git] skipping non-conventional commit %s", c.Hash.String()[:7])
			return nil
		}

		commits = append(commits, commit.Commit{
			ID:      c.Hash.String(),
			Author:  c.Author.Name,
			Date:    c.Author.When,
			Message: msg,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting commits: %w", err)
	}

	return commits, nil
}

// FirstCommit returns the id of the repository's root commit, the oldest
// ancestor of HEAD. Used as the default lower range boundary.
func (r *Repository) FirstCommit() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return "", fmt.Errorf("walking history: %w", err)
	}
	defer iter.Close()

	var first string
	err = iter.ForEach(func(c *object.Commit) error {
		first = c.Hash.String()
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("finding first commit: %w", err)
	}
	if first == "" {
		return "", fmt.Errorf("repository has no commits")
	}
	return first, nil
}

// RemoteURL returns an https base URL for the origin remote, with SCP-style
// and ssh addresses normalized so commit links resolve in a browser.
func (r *Repository) RemoteURL() (string, error) {
	remote, err := r.repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("looking up origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}

	url := normalizeRemoteURL(urls[0])
	logDebug("[git] origin remote URL: %s", url)
	return url, nil
}

// normalizeRemoteURL converts a remote address to an https base URL.
// Handles git@host:owner/repo.git (SCP-style), ssh://git@host/owner/repo,
// and plain https addresses.
func normalizeRemoteURL(url string) string {
	url = strings.TrimSuffix(url, ".git")

	switch {
	case strings.HasPrefix(url, "git@"):
		url = strings.TrimPrefix(url, "git@")
		url = strings.Replace(url, ":", "/", 1)
		return "https://" + url
	case strings.HasPrefix(url, "ssh://git@"):
		return "https://" + strings.TrimPrefix(url, "ssh://git@")
	default:
		return url
	}
}

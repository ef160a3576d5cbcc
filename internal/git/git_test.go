package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/chlog/internal/commit"
)

// testRepo wraps a throwaway on-disk repository for history tests.
type testRepo struct {
	dir  string
	repo *gogit.Repository
}

func initTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err, "initializing test repository")

	return &testRepo{dir: dir, repo: repo}
}

// commitFile writes a file and commits it, returning the full commit id.
func (tr *testRepo) commitFile(t *testing.T, name, message string) string {
	t.Helper()

	wt, err := tr.repo.Worktree()
	require.NoError(t, err, "getting worktree")

	err = os.WriteFile(filepath.Join(tr.dir, name), []byte(message), 0o644)
	require.NoError(t, err, "writing file")

	_, err = wt.Add(name)
	require.NoError(t, err, "staging file")

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: "coco", Email: "coco@example.com", When: time.Now()},
	})
	require.NoError(t, err, "committing")

	return hash.String()
}

func TestOpenOutsideRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err, "opening a non-repository directory should fail")
}

func TestOpenFromSubdirectory(t *testing.T) {
	tr := initTestRepo(t)
	tr.commitFile(t, "a.txt", "chore: initial commit")

	sub := filepath.Join(tr.dir, "nested", "dir")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	_, err := Open(sub)
	require.NoError(t, err, "DetectDotGit should find the repository root")
}

func TestResolveRevision(t *testing.T) {
	tr := initTestRepo(t)
	first := tr.commitFile(t, "a.txt", "chore: initial commit")
	second := tr.commitFile(t, "b.txt", "feat: add feature")

	repo, err := Open(tr.dir)
	require.NoError(t, err)

	head, err := repo.ResolveRevision("HEAD")
	require.NoError(t, err)
	require.Equal(t, second, head)

	resolved, err := repo.ResolveRevision(first)
	require.NoError(t, err)
	require.Equal(t, first, resolved)

	_, err = repo.ResolveRevision("no-such-revision")
	require.Error(t, err)
}

func TestCommitsInRange(t *testing.T) {
	tr := initTestRepo(t)
	first := tr.commitFile(t, "a.txt", "chore: initial commit")
	tr.commitFile(t, "b.txt", "feat: add range flags")
	tr.commitFile(t, "c.txt", "not a conventional message")
	last := tr.commitFile(t, "d.txt", "fix(render): keep section order")

	repo, err := Open(tr.dir)
	require.NoError(t, err)

	commits, err := repo.CommitsInRange(context.Background(), first, last)
	require.NoError(t, err)

	// Newest first; the from commit and the non-conventional commit are
	// excluded.
	require.Len(t, commits, 2)
	require.Equal(t, commit.BugFix, commits[0].Message.Type)
	require.Equal(t, "keep section order", commits[0].Message.Description)
	require.Equal(t, "render", commits[0].Message.Scope)
	require.Equal(t, commit.Feature, commits[1].Message.Type)
	require.Equal(t, "coco", commits[1].Author)
	require.Equal(t, last, commits[0].ID)
}

func TestCommitsInRangeCancelled(t *testing.T) {
	tr := initTestRepo(t)
	first := tr.commitFile(t, "a.txt", "chore: initial commit")
	last := tr.commitFile(t, "b.txt", "feat: add feature")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo, err := Open(tr.dir)
	require.NoError(t, err)

	_, err = repo.CommitsInRange(ctx, first, last)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAllCommits(t *testing.T) {
	tr := initTestRepo(t)
	first := tr.commitFile(t, "a.txt", "chore: initial commit")
	last := tr.commitFile(t, "b.txt", "feat: add feature")

	repo, err := Open(tr.dir)
	require.NoError(t, err)

	commits, err := repo.AllCommits(context.Background(), last)
	require.NoError(t, err)

	// Unlike CommitsInRange, the root commit is included.
	require.Len(t, commits, 2)
	require.Equal(t, last, commits[0].ID)
	require.Equal(t, first, commits[1].ID)
	require.Equal(t, commit.Chore, commits[1].Message.Type)

	ranged, err := repo.CommitsInRange(context.Background(), first, last)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
}

func TestFirstCommit(t *testing.T) {
	tr := initTestRepo(t)
	first := tr.commitFile(t, "a.txt", "chore: initial commit")
	tr.commitFile(t, "b.txt", "feat: add feature")

	repo, err := Open(tr.dir)
	require.NoError(t, err)

	got, err := repo.FirstCommit()
	require.NoError(t, err)
	require.Equal(t, first, got)
}

func TestRemoteURL(t *testing.T) {
	tr := initTestRepo(t)
	tr.commitFile(t, "a.txt", "chore: initial commit")

	_, err := tr.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:raveheart1/chlog.git"},
	})
	require.NoError(t, err)

	repo, err := Open(tr.dir)
	require.NoError(t, err)

	url, err := repo.RemoteURL()
	require.NoError(t, err)
	require.Equal(t, "https://github.com/raveheart1/chlog", url)
}

func TestRemoteURLWithoutOrigin(t *testing.T) {
	tr := initTestRepo(t)
	tr.commitFile(t, "a.txt", "chore: initial commit")

	repo, err := Open(tr.dir)
	require.NoError(t, err)

	_, err = repo.RemoteURL()
	require.Error(t, err)
}

func TestNormalizeRemoteURL(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"scp style": {
			input: "git@github.com:owner/repo.git",
			want:  "https://github.com/owner/repo",
		},
		"ssh scheme": {
			input: "ssh://git@github.com/owner/repo.git",
			want:  "https://github.com/owner/repo",
		},
		"https passthrough": {
			input: "https://github.com/owner/repo",
			want:  "https://github.com/owner/repo",
		},
		"https with suffix": {
			input: "https://gitlab.com/owner/repo.git",
			want:  "https://gitlab.com/owner/repo",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeRemoteURL(tt.input))
		})
	}
}

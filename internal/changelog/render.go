package changelog

import (
	"fmt"
	"strings"

	"github.com/raveheart1/chlog/internal/commit"
)

// ConfigMismatchError reports commits whose semantic type has no entry in
// the type table. This is a configuration bug rather than bad user data, so
// the renderer fails loudly instead of silently dropping the commits.
type ConfigMismatchError struct {
	Types []commit.Type
}

func (e *ConfigMismatchError) Error() string {
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = string(t)
	}
	return fmt.Sprintf("commit types missing from the type table: %s", strings.Join(names, ", "))
}

// Renderer produces markdown fragments for releases. Table fixes both the
// set of known commit types and the order their sections appear in; RepoURL
// is the base address commit links are built from.
type Renderer struct {
	Table   commit.TypeTable
	RepoURL string
}

// Render turns the release into a markdown fragment. Sections follow the
// type table's order, commits keep their relative input order within a
// section, and types with no matching commits produce no output at all.
// colored adds ANSI styling to commit lines without changing the markdown
// structure. Given the same release and table the output is byte-identical.
func (r *Renderer) Render(release *Release, colored bool) (string, error) {
	title, err := release.Title()
	if err != nil {
		return "", fmt.Errorf("building release title: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n## %s - %s\n\n", title, release.Date)

	// Work on a copy so each commit is claimed by exactly one section.
	remaining := make([]commit.Commit, len(release.Commits))
	copy(remaining, release.Commits)

	for _, info := range r.Table {
		var section []commit.Commit
		section, remaining = partition(remaining, info.Type)
		if len(section) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n### %s\n\n", info.Title)
		for _, c := range section {
			b.WriteString(commitLine(c, r.RepoURL, colored))
		}
	}

	if len(remaining) > 0 {
		return "", &ConfigMismatchError{Types: distinctTypes(remaining)}
	}

	return b.String(), nil
}

// partition extracts every commit of the given type, preserving relative
// order on both sides.
func partition(commits []commit.Commit, t commit.Type) (matched, rest []commit.Commit) {
	for _, c := range commits {
		if c.Message.Type == t {
			matched = append(matched, c)
		} else {
			rest = append(rest, c)
		}
	}
	return matched, rest
}

// distinctTypes returns the types of the given commits in first-seen order.
func distinctTypes(commits []commit.Commit) []commit.Type {
	seen := make(map[commit.Type]bool)
	var types []commit.Type
	for _, c := range commits {
		if !seen[c.Message.Type] {
			seen[c.Message.Type] = true
			types = append(types, c.Message.Type)
		}
	}
	return types
}

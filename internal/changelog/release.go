package changelog

import (
	"fmt"

	"github.com/raveheart1/chlog/internal/commit"
)

// shortRefLen is the number of leading hex characters shown for a commit id.
const shortRefLen = 6

// Release describes a single changelog entry: the commit range it covers,
// its date, the commits in that range, and an optional tag name. The date is
// caller-supplied and never reformatted. A Release is single-use; it is
// constructed fresh per invocation and consumed once by the renderer.
type Release struct {
	From    string
	To      string
	Date    string
	TagName string
	Commits []commit.Commit
}

// Title returns the heading text for the release. A tag name is used
// verbatim when present; otherwise the title is the short from..to range.
func (r *Release) Title() (string, error) {
	if r.TagName != "" {
		return r.TagName, nil
	}

	from, err := shortRef(r.From)
	if err != nil {
		return "", err
	}
	to, err := shortRef(r.To)
	if err != nil {
		return "", err
	}
	return from + ".." + to, nil
}

// shortRef truncates a full commit id to its display form. Range boundaries
// must be full-length content hashes; anything shorter is a caller bug and
// surfaces as an error rather than an out-of-bounds slice.
func shortRef(id string) (string, error) {
	if len(id) < shortRefLen {
		return "", fmt.Errorf("commit id %q is too short: need at least %d characters", id, shortRefLen)
	}
	return id[:shortRefLen], nil
}

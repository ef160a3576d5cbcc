// Package commit defines the parsed commit model consumed by the changelog
// renderer, the ordered commit-type metadata table that fixes section order,
// and a lenient classifier that splits raw commit messages into conventional
// commit fields.
package commit

import "time"

// Commit is a single version-control commit whose message has already been
// split into conventional commit fields.
type Commit struct {
	ID      string
	Author  string
	Date    time.Time
	Message Message
}

// Message holds the semantic fields of a conventional commit message.
type Message struct {
	Type           Type
	Scope          string
	Body           string
	Footer         string
	Description    string
	BreakingChange bool
}

// ShortID returns the abbreviated display form of the commit identifier.
// Identifiers shorter than the display length are returned as-is.
func (c Commit) ShortID() string {
	if len(c.ID) < 6 {
		return c.ID
	}
	return c.ID[:6]
}

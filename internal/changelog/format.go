package changelog

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/raveheart1/chlog/internal/commit"
)

var (
	// Commit line styles for terminal output. fatih/color falls back to
	// plain text automatically when the output is not a terminal.
	idStyle     = color.New(color.FgYellow).SprintFunc()
	descStyle   = color.New(color.Bold).SprintFunc()
	authorStyle = color.New(color.FgCyan).SprintFunc()
)

// commitLine formats one commit as a markdown line. colored styles the id,
// description, and author for terminals; the layout is identical either way.
func commitLine(c commit.Commit, repoURL string, colored bool) string {
	link := commitURL(repoURL, c.ID)

	if !colored {
		return fmt.Sprintf("[%s](%s) - %s - %s\n", c.ShortID(), link, c.Message.Description, c.Author)
	}
	return fmt.Sprintf("[%s](%s) - %s - %s\n",
		idStyle(c.ShortID()), link, descStyle(c.Message.Description), authorStyle(c.Author))
}

// commitURL builds the outbound link for a commit from the repository base URL.
func commitURL(repoURL, id string) string {
	return strings.TrimSuffix(repoURL, "/") + "/commit/" + id
}

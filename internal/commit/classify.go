package commit

import (
	"regexp"
	"strings"
)

// headerPattern matches a conventional commit subject line:
// type(scope)!: description, with scope and the breaking-change marker optional.
var headerPattern = regexp.MustCompile(`^([a-zA-Z]+)(?:\(([^)]*)\))?(!)?:\s+(.+)$`)

// Classify splits a raw commit message into conventional commit fields.
// It reports false when the subject line does not follow the
// type(scope): description shape; callers are expected to skip such commits
// rather than treat them as errors. Classification is not validation: no
// check is made that the type is a known one.
func Classify(raw string) (Message, bool) {
	subject, rest, _ := strings.Cut(strings.TrimSpace(raw), "\n")

	m := headerPattern.FindStringSubmatch(strings.TrimSpace(subject))
	if m == nil {
		return Message{}, false
	}

	msg := Message{
		Type:           Type(strings.ToLower(m[1])),
		Scope:          m[2],
		Description:    m[4],
		BreakingChange: m[3] == "!",
	}

	msg.Body, msg.Footer = splitBodyFooter(rest)
	if strings.Contains(msg.Footer, "BREAKING CHANGE") {
		msg.BreakingChange = true
	}

	return msg, true
}

// splitBodyFooter separates the free-text body from the trailing footer
// paragraph. With a single paragraph everything is body; with more, the last
// paragraph is the footer.
func splitBodyFooter(rest string) (body, footer string) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", ""
	}

	paragraphs := strings.Split(rest, "\n\n")
	if len(paragraphs) == 1 {
		return paragraphs[0], ""
	}

	body = strings.TrimSpace(strings.Join(paragraphs[:len(paragraphs)-1], "\n\n"))
	footer = strings.TrimSpace(paragraphs[len(paragraphs)-1])
	return body, footer
}

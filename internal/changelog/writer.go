package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Separator is the literal marker line the merge modes anchor on. It must
// stay byte-identical across the header, mid-document insertions, and the
// footer, or later merges will not find their splice point.
const Separator = "- - -"

// WriteMode selects how a rendered fragment combines with the existing
// changelog file.
type WriteMode int

const (
	// Replace regenerates the whole file from the header and footer
	// templates, discarding any prior content.
	Replace WriteMode = iota
	// Prepend inserts the fragment after the first separator, directly
	// below the header and above all prior releases.
	Prepend
	// Append inserts the fragment after the last separator, below all
	// prior content, keeping a closing marker.
	Append
)

// String returns the mode name as used in configuration and flags.
func (m WriteMode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Prepend:
		return "prepend"
	case Append:
		return "append"
	default:
		return fmt.Sprintf("WriteMode(%d)", int(m))
	}
}

// ParseWriteMode maps a mode name from configuration or flags to a WriteMode.
func ParseWriteMode(s string) (WriteMode, error) {
	switch strings.ToLower(s) {
	case "replace":
		return Replace, nil
	case "prepend":
		return Prepend, nil
	case "append":
		return Append, nil
	default:
		return 0, fmt.Errorf("unknown write mode %q: want replace, prepend, or append", s)
	}
}

// MissingSeparatorError reports a changelog file without the separator
// marker, which leaves Prepend and Append with no splice anchor.
type MissingSeparatorError struct {
	Separator string
	Path      string
}

func (e *MissingSeparatorError) Error() string {
	return fmt.Sprintf("cannot find separator %q in %s", e.Separator, e.Path)
}

// Writer merges rendered fragments into the changelog file at Path. Each
// invocation assumes single-writer access to the file; concurrent writers
// are a caller-level concern.
type Writer struct {
	Path string
	Mode WriteMode
}

// Write merges the fragment into the file at w.Path according to w.Mode.
// Nothing is written when the merge fails, so a missing separator never
// leaves a partially updated file behind.
func (w *Writer) Write(fragment string) error {
	content, err := w.Merge(fragment)
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", w.Path, err)
	}
	return nil
}

// Merge computes the merged file content without touching the filesystem,
// for callers that want to inspect the result before writing.
func (w *Writer) Merge(fragment string) (string, error) {
	if w.Mode == Replace {
		return DefaultHeader() + fragment + DefaultFooter(), nil
	}

	existing, err := w.readOrTemplate()
	if err != nil {
		return "", err
	}
	return w.insert(existing, fragment)
}

// readOrTemplate loads the current changelog, substituting a fresh template
// when the file does not exist yet so the merge always has a separator to
// anchor on. Read failures other than not-exist propagate.
func (w *Writer) readOrTemplate() (string, error) {
	data, err := os.ReadFile(w.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Template(), nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", w.Path, err)
	}
	return string(data), nil
}

// insert splices the fragment after the anchoring separator, followed by a
// fresh separator line so the next merge still has its marker.
func (w *Writer) insert(existing, fragment string) (string, error) {
	var idx int
	switch w.Mode {
	case Prepend:
		idx = strings.Index(existing, Separator)
	case Append:
		idx = strings.LastIndex(existing, Separator)
	default:
		return "", fmt.Errorf("write mode %s does not splice", w.Mode)
	}
	if idx < 0 {
		return "", &MissingSeparatorError{Separator: Separator, Path: w.Path}
	}

	at := idx + len(Separator)
	var b strings.Builder
	b.WriteString(existing[:at])
	b.WriteString(fragment)
	b.WriteString("\n" + Separator)
	b.WriteString(existing[at:])
	return b.String(), nil
}

// DefaultHeader returns the fixed document preamble, ending with the first
// separator line.
func DefaultHeader() string {
	return "# Changelog\n" +
		"All notable changes to this project will be documented in this file. " +
		"See [conventional commits](https://www.conventionalcommits.org/) for commit guidelines.\n" +
		"\n" +
		Separator + "\n"
}

// DefaultFooter returns the attribution line closing the document.
func DefaultFooter() string {
	return "\nThis changelog was generated by [chlog](https://github.com/raveheart1/chlog)."
}

// Template returns the smallest valid changelog document: header plus
// footer, carrying the separator Prepend and Append anchor on.
func Template() string {
	return DefaultHeader() + DefaultFooter()
}

package commit

// Type is a semantic commit type drawn from a closed, configuration-defined
// set (e.g. "feat", "fix").
type Type string

// Built-in conventional commit types, matching the default type table.
const (
	Feature       Type = "feat"
	BugFix        Type = "fix"
	Chore         Type = "chore"
	Revert        Type = "revert"
	Performance   Type = "perf"
	Documentation Type = "docs"
	Style         Type = "style"
	Refactor      Type = "refactor"
	Test          Type = "test"
	Build         Type = "build"
	CI            Type = "ci"
)

// TypeInfo pairs a commit type with its changelog section title.
type TypeInfo struct {
	Type  Type
	Title string
}

// TypeTable is the ordered commit-type metadata table. Its iteration order
// determines the order sections appear in rendered output; it is supplied by
// configuration and treated as read-only for the lifetime of a run.
type TypeTable []TypeInfo

// Title returns the section title mapped to the given type, and whether the
// type is present in the table.
func (t TypeTable) Title(ty Type) (string, bool) {
	for _, info := range t {
		if info.Type == ty {
			return info.Title, true
		}
	}
	return "", false
}

// Contains reports whether the table has an entry for the given type.
func (t TypeTable) Contains(ty Type) bool {
	_, ok := t.Title(ty)
	return ok
}

// DefaultTable returns the built-in type table in its standard order.
func DefaultTable() TypeTable {
	return TypeTable{
		{Type: Feature, Title: "Features"},
		{Type: BugFix, Title: "Bug Fixes"},
		{Type: Chore, Title: "Miscellaneous Chores"},
		{Type: Revert, Title: "Revert"},
		{Type: Performance, Title: "Performance Improvements"},
		{Type: Documentation, Title: "Documentation"},
		{Type: Style, Title: "Style"},
		{Type: Refactor, Title: "Refactoring"},
		{Type: Test, Title: "Tests"},
		{Type: Build, Title: "Build system"},
		{Type: CI, Title: "Continuous Integration"},
	}
}

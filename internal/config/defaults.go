package config

import "github.com/raveheart1/chlog/internal/commit"

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]any {
	return map[string]any{
		"changelog.path": "CHANGELOG.md",
		"changelog.mode": "prepend",
		"repository.url": "",
	}
}

// defaultTypeMappings returns the built-in commit-type table as config
// mappings, preserving its standard order.
func defaultTypeMappings() []TypeMapping {
	table := commit.DefaultTable()
	mappings := make([]TypeMapping, 0, len(table))
	for _, info := range table {
		mappings = append(mappings, TypeMapping{Type: string(info.Type), Title: info.Title})
	}
	return mappings
}

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# chlog Configuration
# See 'chlog generate -h' for command flags, 'chlog types' for the active type table

changelog:
  path: CHANGELOG.md                  # Changelog file location
  mode: prepend                       # Default merge strategy: replace | prepend | append

repository:
  url: ""                             # Base URL for commit links (empty = derive from origin remote)

# Commit type table. List order fixes section order in the rendered output.
# Commits whose type is missing from this table fail generation loudly.
types:
  - { type: feat, title: Features }
  - { type: fix, title: Bug Fixes }
  - { type: chore, title: Miscellaneous Chores }
  - { type: revert, title: Revert }
  - { type: perf, title: Performance Improvements }
  - { type: docs, title: Documentation }
  - { type: style, title: Style }
  - { type: refactor, title: Refactoring }
  - { type: test, title: Tests }
  - { type: build, title: Build system }
  - { type: ci, title: Continuous Integration }
`
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ValidateYAMLSyntax checks that the file at path is syntactically valid
// YAML before koanf loads it, so syntax errors surface with the file named.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}

// Validate checks the resolved configuration for values the rest of the run
// cannot work with.
func Validate(cfg *Configuration) error {
	switch cfg.Changelog.Mode {
	case "replace", "prepend", "append":
	default:
		return fmt.Errorf("changelog.mode %q: want replace, prepend, or append", cfg.Changelog.Mode)
	}

	if cfg.Changelog.Path == "" {
		return fmt.Errorf("changelog.path must not be empty")
	}

	seen := make(map[string]bool)
	for i, m := range cfg.Types {
		if m.Type == "" {
			return fmt.Errorf("types[%d]: type must not be empty", i)
		}
		if m.Title == "" {
			return fmt.Errorf("types[%d] (%s): title must not be empty", i, m.Type)
		}
		if seen[m.Type] {
			return fmt.Errorf("types: duplicate entry for %q", m.Type)
		}
		seen[m.Type] = true
	}

	return nil
}

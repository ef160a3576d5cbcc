// Package config provides hierarchical configuration management for chlog
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.chlog/config.yml) > user config (~/.config/chlog/config.yml)
// > defaults. The resolved configuration is loaded once per run and treated
// as read-only afterwards.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/raveheart1/chlog/internal/commit"
)

// Configuration holds the resolved chlog settings for one run.
type Configuration struct {
	Changelog  ChangelogConfig  `koanf:"changelog"`
	Repository RepositoryConfig `koanf:"repository"`

	// Types is the ordered commit-type metadata table. The list order in
	// configuration fixes the section order in rendered output. Empty means
	// the built-in table.
	Types []TypeMapping `koanf:"types"`
}

// ChangelogConfig controls where and how the changelog file is written.
type ChangelogConfig struct {
	// Path is the changelog file location, relative to the working directory.
	Path string `koanf:"path"`
	// Mode is the default merge strategy: replace, prepend, or append.
	Mode string `koanf:"mode"`
}

// RepositoryConfig identifies the repository commits are linked to.
type RepositoryConfig struct {
	// URL is the https base used for commit links. Empty means derive it
	// from the origin remote.
	URL string `koanf:"url"`
}

// TypeMapping pairs a conventional commit type with its section title.
type TypeMapping struct {
	Type  string `koanf:"type"`
	Title string `koanf:"title"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .chlog/config.yml).
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	userPath, _ := UserConfigPath()
	if err := loadFileConfig(k, userPath, "user"); err != nil {
		return nil, err
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	if err := loadFileConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("CHLOG_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadFileConfig validates and loads a YAML config file if it exists.
func loadFileConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// finalizeConfig unmarshals, fills defaults, and validates.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if len(cfg.Types) == 0 {
		cfg.Types = defaultTypeMappings()
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// TypeTable converts the configured mappings into the renderer's ordered
// type table.
func (c *Configuration) TypeTable() commit.TypeTable {
	table := make(commit.TypeTable, 0, len(c.Types))
	for _, m := range c.Types {
		table = append(table, commit.TypeInfo{Type: commit.Type(m.Type), Title: m.Title})
	}
	return table
}

// envTransform converts environment variable names to config keys.
// Example: CHLOG_CHANGELOG_PATH -> changelog.path. Only the first underscore
// separates the section from the key; none of the keys contain underscores.
func envTransform(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "CHLOG_")), "_", ".", 1)
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

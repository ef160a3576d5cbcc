package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raveheart1/chlog/internal/commit"
)

// isolateUserConfig points the user config lookup at an empty directory so
// tests never pick up a real ~/.config/chlog.
func isolateUserConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolateUserConfig(t)

	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(t.TempDir(), "does-not-exist.yml"),
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if cfg.Changelog.Path != "CHANGELOG.md" {
		t.Errorf("Changelog.Path = %q, want CHANGELOG.md", cfg.Changelog.Path)
	}
	if cfg.Changelog.Mode != "prepend" {
		t.Errorf("Changelog.Mode = %q, want prepend", cfg.Changelog.Mode)
	}
	if len(cfg.Types) != len(commit.DefaultTable()) {
		t.Errorf("len(Types) = %d, want %d", len(cfg.Types), len(commit.DefaultTable()))
	}
	if cfg.Types[0].Type != "feat" || cfg.Types[0].Title != "Features" {
		t.Errorf("Types[0] = %+v, want feat/Features", cfg.Types[0])
	}
}

func TestLoadProjectConfig(t *testing.T) {
	isolateUserConfig(t)

	path := writeConfig(t, `
changelog:
  path: docs/CHANGES.md
  mode: append
repository:
  url: https://example.com/owner/repo
types:
  - { type: test, title: Tests }
  - { type: feat, title: Features }
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Changelog.Path != "docs/CHANGES.md" {
		t.Errorf("Changelog.Path = %q, want docs/CHANGES.md", cfg.Changelog.Path)
	}
	if cfg.Changelog.Mode != "append" {
		t.Errorf("Changelog.Mode = %q, want append", cfg.Changelog.Mode)
	}
	if cfg.Repository.URL != "https://example.com/owner/repo" {
		t.Errorf("Repository.URL = %q", cfg.Repository.URL)
	}

	// Config order is preserved: this table puts Tests before Features.
	table := cfg.TypeTable()
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}
	if table[0].Type != commit.Test || table[1].Type != commit.Feature {
		t.Errorf("table order = %v, want [test feat]", table)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateUserConfig(t)

	path := writeConfig(t, "changelog:\n  path: docs/CHANGES.md\n")
	t.Setenv("CHLOG_CHANGELOG_PATH", "notes/HISTORY.md")
	t.Setenv("CHLOG_CHANGELOG_MODE", "replace")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Changelog.Path != "notes/HISTORY.md" {
		t.Errorf("env override lost: Changelog.Path = %q", cfg.Changelog.Path)
	}
	if cfg.Changelog.Mode != "replace" {
		t.Errorf("env override lost: Changelog.Mode = %q", cfg.Changelog.Mode)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := map[string]struct {
		content string
		wantErr string
	}{
		"invalid yaml syntax": {
			content: "changelog: [unclosed",
			wantErr: "YAML",
		},
		"unknown mode": {
			content: "changelog:\n  mode: merge\n",
			wantErr: "changelog.mode",
		},
		"empty path": {
			content: "changelog:\n  path: \"\"\n",
			wantErr: "changelog.path",
		},
		"duplicate type": {
			content: "types:\n  - { type: feat, title: A }\n  - { type: feat, title: B }\n",
			wantErr: "duplicate",
		},
		"missing title": {
			content: "types:\n  - { type: feat }\n",
			wantErr: "title",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateUserConfig(t)
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := map[string]string{
		"CHLOG_CHANGELOG_PATH": "changelog.path",
		"CHLOG_CHANGELOG_MODE": "changelog.mode",
		"CHLOG_REPOSITORY_URL": "repository.url",
	}

	for in, want := range tests {
		if got := envTransform(in); got != want {
			t.Errorf("envTransform(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultConfigTemplateIsLoadable(t *testing.T) {
	isolateUserConfig(t)

	path := writeConfig(t, GetDefaultConfigTemplate())

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(default template) error = %v", err)
	}
	if len(cfg.Types) != len(commit.DefaultTable()) {
		t.Errorf("template types = %d, want %d", len(cfg.Types), len(commit.DefaultTable()))
	}
}

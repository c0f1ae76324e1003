package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfigFile drops a config file into ./.pycodex in the test's temp cwd
func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	cfgDir := filepath.Join(dir, ".pycodex")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, ConfigFileName), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	runInTempDir(t)

	fc, err := LoadConfigFile()
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if fc.Backends != nil || fc.Defaults != nil {
		t.Errorf("expected empty config, got %+v", fc)
	}
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	dir := runInTempDir(t)
	writeConfigFile(t, dir, "backends: [broken")

	if _, err := LoadConfigFile(); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}

func TestValidate_FileValues(t *testing.T) {
	dir := runInTempDir(t)
	clearAllEnvVars(t)
	writeConfigFile(t, dir, `
backends:
  codex:
    cli: /usr/local/bin/codex
    model: gpt-5-codex
    approval_mode: auto-edit
    sandbox: read-only
    files_arg: true
    split_edit: false
  gemini:
    model: gemini-pro
defaults:
  backend: gemini
  render: true
`)

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Backend != "gemini" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "gemini")
	}
	if cfg.Codex.CLI != "/usr/local/bin/codex" {
		t.Errorf("Codex.CLI = %q", cfg.Codex.CLI)
	}
	if cfg.Codex.ApprovalMode != "auto-edit" {
		t.Errorf("Codex.ApprovalMode = %q", cfg.Codex.ApprovalMode)
	}
	if cfg.Codex.Sandbox != "read-only" {
		t.Errorf("Codex.Sandbox = %q", cfg.Codex.Sandbox)
	}
	if !cfg.Codex.FilesArg {
		t.Error("Codex.FilesArg should be true from file")
	}
	if cfg.Codex.SplitEdit {
		t.Error("Codex.SplitEdit should be false from file")
	}
	if cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("Gemini.Model = %q", cfg.Gemini.Model)
	}
	if !cfg.Render {
		t.Error("Render should be true from file defaults")
	}
}

func TestValidate_EnvBeatsFile(t *testing.T) {
	dir := runInTempDir(t)
	clearAllEnvVars(t)
	writeConfigFile(t, dir, `
backends:
  codex:
    cli: from-file
    model: from-file-model
`)
	t.Setenv(EnvCodexCLI, "from-env")

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Codex.CLI != "from-env" {
		t.Errorf("Codex.CLI = %q, want env value", cfg.Codex.CLI)
	}
	// Fields untouched by env still come from the file
	if cfg.Codex.Model != "from-file-model" {
		t.Errorf("Codex.Model = %q, want file value", cfg.Codex.Model)
	}
}

func TestValidate_PartialFileFallsBackToDefaults(t *testing.T) {
	dir := runInTempDir(t)
	clearAllEnvVars(t)
	writeConfigFile(t, dir, `
backends:
  gemini:
    cli: gemini-beta
`)

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Gemini.CLI != "gemini-beta" {
		t.Errorf("Gemini.CLI = %q", cfg.Gemini.CLI)
	}
	if cfg.Codex.CLI != "codex" {
		t.Errorf("Codex.CLI = %q, want default", cfg.Codex.CLI)
	}
	if cfg.Backend != "codex" {
		t.Errorf("Backend = %q, want default", cfg.Backend)
	}
}

func TestGetConfigPaths(t *testing.T) {
	runInTempDir(t)

	paths := GetConfigPaths()
	if len(paths) < 2 {
		t.Fatalf("expected at least 2 candidate paths, got %d", len(paths))
	}
	if paths[0] != filepath.Join(".", ".pycodex", ConfigFileName) {
		t.Errorf("first path = %q, want local .pycodex", paths[0])
	}
}

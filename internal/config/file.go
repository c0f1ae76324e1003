package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// FileConfig is the configuration file structure.
type FileConfig struct {
	Backends *BackendsConfig `yaml:"backends,omitempty"`
	Defaults *DefaultsConfig `yaml:"defaults,omitempty"`
}

// BackendsConfig holds per-backend file settings under backends.<name>.
type BackendsConfig struct {
	Codex  *BackendFileConfig `yaml:"codex,omitempty"`
	Gemini *BackendFileConfig `yaml:"gemini,omitempty"`
}

// BackendFileConfig mirrors BackendConfig with yaml tags. Boolean toggles are
// pointers so "absent" and "false" stay distinguishable.
type BackendFileConfig struct {
	CLI          string `yaml:"cli,omitempty"`
	Model        string `yaml:"model,omitempty"`
	ApprovalMode string `yaml:"approval_mode,omitempty"`
	Sandbox      string `yaml:"sandbox,omitempty"`
	FilesArg     *bool  `yaml:"files_arg,omitempty"`
	SplitEdit    *bool  `yaml:"split_edit,omitempty"`
}

// DefaultsConfig holds default flag values.
type DefaultsConfig struct {
	Backend string `yaml:"backend,omitempty"`
	Render  bool   `yaml:"render,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority)
func GetConfigPaths() []string {
	var paths []string

	// 1. Current directory
	paths = append(paths, filepath.Join(".", ".pycodex", ConfigFileName))

	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "pycodex", ConfigFileName))
	}

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "pycodex", ConfigFileName))
	}

	return paths
}

// LoadConfigFile attempts to load configuration from the first file found.
func LoadConfigFile() (*FileConfig, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return loadConfigFromPath(path)
		}
	}
	// No config file found, return empty config
	return &FileConfig{}, nil
}

func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// applyFileConfig copies file values into still-empty Config fields. It runs
// after the environment layer, so anything set there is left alone. Returns
// whether codex split_edit was decided by env or file.
func (c *Config) applyFileConfig(fc *FileConfig, splitEditSet bool) bool {
	if fc == nil {
		return splitEditSet
	}

	if fc.Backends != nil {
		applyBackendFile(&c.Codex, fc.Backends.Codex)
		applyBackendFile(&c.Gemini, fc.Backends.Gemini)

		if b := fc.Backends.Codex; b != nil {
			if b.FilesArg != nil && os.Getenv(EnvCodexFilesArg) == "" {
				c.Codex.FilesArg = *b.FilesArg
			}
			if b.SplitEdit != nil && !splitEditSet {
				c.Codex.SplitEdit = *b.SplitEdit
				splitEditSet = true
			}
		}
	}

	if fc.Defaults != nil {
		if c.Backend == "" && fc.Defaults.Backend != "" {
			c.Backend = fc.Defaults.Backend
		}
		if fc.Defaults.Render && !c.Render {
			c.Render = true
		}
	}

	return splitEditSet
}

func applyBackendFile(dst *BackendConfig, src *BackendFileConfig) {
	if src == nil {
		return
	}
	if dst.CLI == "" && src.CLI != "" {
		dst.CLI = src.CLI
	}
	if dst.Model == "" && src.Model != "" {
		dst.Model = src.Model
	}
	if dst.ApprovalMode == "" && src.ApprovalMode != "" {
		dst.ApprovalMode = src.ApprovalMode
	}
	if dst.Sandbox == "" && src.Sandbox != "" {
		dst.Sandbox = src.Sandbox
	}
}

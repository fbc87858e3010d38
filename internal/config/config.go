// Package config loads the optional project configuration file: the
// module's own name, version, and requirements, plus per-name diagnostic
// level overrides applied before any compilation begins.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/warplang/warpc/internal/diag"
	"github.com/warplang/warpc/internal/ir"
)

// Config is the top-level shape of warp.yaml.
type Config struct {
	Module       string              `yaml:"module"`
	Version      string              `yaml:"version,omitempty"`
	Requirements []RequirementConfig `yaml:"requirements,omitempty"`
	Diagnostics  map[string]string   `yaml:"diagnostics,omitempty"`
}

// RequirementConfig is one entry of the requirements list.
type RequirementConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LoadConfig reads and parses a warp.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses warp.yaml content from bytes. The path argument is
// used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Module == "" {
		return nil, fmt.Errorf("parsing %s: module name is required", path)
	}
	if cfg.Version == "" {
		cfg.Version = "0.1.0"
	}
	return &cfg, nil
}

// FindConfig searches for warp.yaml starting from dir and walking up to
// parent directories. Returns the path to the config file and true if
// found, or an empty string and false if not found.
func FindConfig(dir string) (string, bool, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"warp.yaml", "warp.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// ModuleVersion parses the config's version string into an ir.Version.
func (c *Config) ModuleVersion() (ir.Version, error) {
	return ir.ParseVersion(c.Version)
}

// RequirementVersions parses every requirement's version string, returning
// an error naming the first one that fails to parse.
func (c *Config) RequirementVersions() ([]ir.Requirement, error) {
	out := make([]ir.Requirement, 0, len(c.Requirements))
	for _, r := range c.Requirements {
		v, err := ir.ParseVersion(r.Version)
		if err != nil {
			return nil, fmt.Errorf("requirement %q: %w", r.Name, err)
		}
		out = append(out, ir.Requirement{Name: r.Name, Version: v})
	}
	return out, nil
}

// DiagnosticOverrides parses the config's diagnostics map into a level
// frame suitable for diag.Engine.PushOverrides, by name. An unrecognized
// level string is skipped rather than erroring the whole config — a single
// typo'd override should not block the rest from taking effect.
func (c *Config) DiagnosticOverrides() map[diag.Name]diag.Level {
	out := make(map[diag.Name]diag.Level, len(c.Diagnostics))
	for name, levelStr := range c.Diagnostics {
		lvl, ok := parseLevel(levelStr)
		if !ok {
			continue
		}
		out[diag.Name(name)] = lvl
	}
	return out
}

func parseLevel(s string) (diag.Level, bool) {
	switch s {
	case "debug":
		return diag.Debug, true
	case "info":
		return diag.Info, true
	case "warning":
		return diag.Warning, true
	case "error":
		return diag.Error, true
	case "panic":
		return diag.Panic, true
	case "never":
		return diag.Never, true
	default:
		return 0, false
	}
}

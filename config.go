package xtask

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fastlabs/xtask/bootstrap"
)

// ConfigFile is the optional configuration file read from the workspace root.
const ConfigFile = "xtask.yaml"

// Config defines the configuration for a workspace using xtask.
type Config struct {
	// Root is the absolute path of the workspace root.
	// It is never read from the config file.
	Root string `yaml:"-"`

	// License configures the license header check.
	License LicenseConfig `yaml:"license"`

	// Tools configures where third-party tools are installed.
	Tools ToolsConfig `yaml:"tools"`

	// Bootstrap overrides the bootstrap plan.
	// A nil value uses bootstrap.DefaultPlan().
	Bootstrap *bootstrap.Plan `yaml:"bootstrap"`
}

// LicenseConfig controls the license header check.
type LicenseConfig struct {
	// Holder is the copyright holder written into new headers.
	// Default: "FastLabs Developers"
	Holder string `yaml:"holder"`

	// Kind is the addlicense license type.
	// Default: "apache"
	Kind string `yaml:"kind"`

	// Ignore lists glob patterns excluded from the check.
	Ignore []string `yaml:"ignore"`
}

// ToolsConfig controls tool installation.
type ToolsConfig struct {
	// BinDir is where tools are installed, relative to Root unless absolute.
	// Default: ".xtask/bin"
	BinDir string `yaml:"binDir"`
}

// WithDefaults returns a copy of the config with default values applied.
func (c Config) WithDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.License.Holder == "" {
		c.License.Holder = "FastLabs Developers"
	}
	if c.License.Kind == "" {
		c.License.Kind = "apache"
	}
	if c.License.Ignore == nil {
		c.License.Ignore = []string{DirName + "/**", "**/testdata/**"}
	}
	if c.Tools.BinDir == "" {
		c.Tools.BinDir = filepath.Join(DirName, BinDirName)
	}
	if c.Bootstrap == nil {
		plan := bootstrap.DefaultPlan()
		c.Bootstrap = &plan
	} else {
		plan := c.Bootstrap.WithDefaults()
		c.Bootstrap = &plan
	}
	return c
}

// LoadConfig reads the config file at path and applies defaults.
// An empty path reads ConfigFile from root; a missing default file is not an error.
// The returned Root is absolute.
func LoadConfig(root, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, ConfigFile)
	}

	cfg := Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Config{}, fmt.Errorf("resolve root %s: %w", root, err)
	}
	cfg.Root = abs
	return cfg.WithDefaults(), nil
}

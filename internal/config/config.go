// Package config holds the CLI defaults. They may be loaded from a YAML
// file (JSON is accepted too) and are overridden by command line flags.
package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/srlehn/pnmscale/internal/consts"
	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/kernel"
)

type Config struct {
	// Kernel is the default interpolation kernel name.
	Kernel  string  `yaml:"kernel"`
	CubicA  float64 `yaml:"cubic_a"`
	Workers int     `yaml:"workers"`
	// MemoryFraction of the available system memory a single output raster
	// may occupy. 0 disables the check.
	MemoryFraction float64 `yaml:"memory_fraction"`
	LogLevel       string  `yaml:"log_level"`

	PreviewMode  string `yaml:"preview_mode"`
	PreviewWidth int    `yaml:"preview_width"`
	// CompareResizers limits the compare command, empty means all.
	CompareResizers []string `yaml:"compare_resizers,omitempty"`
}

func Default() *Config {
	return &Config{
		Kernel:         kernel.CubicConvolution.String(),
		CubicA:         kernel.DefaultCubicA,
		Workers:        runtime.GOMAXPROCS(0),
		MemoryFraction: 0.5,
		LogLevel:       `warn`,
		PreviewMode:    `ansi`,
		PreviewWidth:   80,
	}
}

// Validate resets out of range values to their defaults. An unknown kernel
// name is an error.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NilReceiver()
	}
	d := Default()
	if len(c.Kernel) == 0 {
		c.Kernel = d.Kernel
	}
	if _, err := kernel.ParseKind(c.Kernel); err != nil {
		return err
	}
	if math.IsNaN(c.CubicA) || c.CubicA > 0 || c.CubicA < -3 {
		c.CubicA = d.CubicA
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.MemoryFraction < 0 || c.MemoryFraction > 1 {
		c.MemoryFraction = d.MemoryFraction
	}
	if len(c.LogLevel) == 0 {
		c.LogLevel = d.LogLevel
	}
	switch c.PreviewMode {
	case `ansi`, `sixel`:
	default:
		c.PreviewMode = d.PreviewMode
	}
	if c.PreviewWidth <= 0 {
		c.PreviewWidth = d.PreviewWidth
	}
	return nil
}

// DefaultPath is config.yaml in the user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ``, errors.New(err)
	}
	return filepath.Join(dir, consts.LibraryName, `config.yaml`), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.New(err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return Default(), errors.Errorf(`parsing %s: %w`, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.New(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New(err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.New(err)
	}
	return nil
}

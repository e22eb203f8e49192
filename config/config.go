// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of a paescore batch: which
// records to score, where the binder/target boundary sits in each, and how
// results and logs are emitted.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paescore/logging"
)

// ErrInvalidConfig indicates a configuration that cannot be parsed or run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvField    = "PAESCORE_FIELD"
	EnvWorkers  = "PAESCORE_WORKERS"
	EnvLogLevel = "PAESCORE_LOG_LEVEL"
)

// Config holds all paescore configuration.
type Config struct {
	// Field is the matrix field read from every record unless a job overrides it.
	Field string `yaml:"field"`

	// Workers bounds the number of records scored at once.
	Workers int `yaml:"workers"`

	// FailFast stops the batch at the first failed job.
	FailFast bool `yaml:"fail_fast"`

	Jobs    []JobConfig   `yaml:"jobs"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// dir is the directory of the file the config was loaded from.
	dir string
}

// JobConfig describes one record to score. Exactly one of BinderLength and
// BinderChain locates the boundary.
type JobConfig struct {
	Name         string `yaml:"name"`
	Source       string `yaml:"source"`
	Field        string `yaml:"field,omitempty"`
	BinderLength int    `yaml:"binder_length,omitempty"`
	BinderChain  string `yaml:"binder_chain,omitempty"`
}

// OutputConfig selects the report format and destination ("" or "-" is stdout).
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the default configuration. It has no jobs.
func DefaultConfig() *Config {
	return &Config{
		Field:   "pae",
		Workers: 4,
		Output: OutputConfig{
			Format: "jsonl",
		},
		Logging: LoggingConfig{
			Level:  logging.DefaultLevel,
			Format: logging.DefaultFormat,
		},
	}
}

// ExampleConfig is DefaultConfig plus two illustrative jobs, one per way of
// locating the boundary. init-config writes it.
func ExampleConfig() *Config {
	cfg := DefaultConfig()
	cfg.Jobs = []JobConfig{
		{
			Name:        "fold_complex_prediction_1",
			Source:      "fold_complex_prediction_1/fold_complex_prediction_1_full_data_0.json",
			BinderChain: "A",
		},
		{
			Name:         "fold_complex_prediction_2",
			Source:       "fold_complex_prediction_2/fold_complex_prediction_2_full_data_0.json",
			BinderLength: 100,
		},
	}

	return cfg
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last; Validate is left to the
// caller.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err = cfg.applyEnvOverrides(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %v: %w", path, err, ErrInvalidConfig)
	}
	cfg.dir = filepath.Dir(path)
	cfg.normalize()

	if err = cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// ResolvePath interprets p relative to the directory of the loaded file.
// Absolute paths, and every path of a config not read from disk, pass through.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}

	return filepath.Join(c.dir, p)
}

// JobField returns the field a job reads, falling back to Config.Field.
func (c *Config) JobField(j JobConfig) string {
	if j.Field != "" {
		return j.Field
	}

	return c.Field
}

// normalize names unnamed jobs after their source file.
func (c *Config) normalize() {
	for i := range c.Jobs {
		if c.Jobs[i].Name == "" && c.Jobs[i].Source != "" {
			base := filepath.Base(c.Jobs[i].Source)
			c.Jobs[i].Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if field := os.Getenv(EnvField); field != "" {
		c.Field = field
	}
	if s := os.Getenv(EnvWorkers); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not an integer: %w", EnvWorkers, s, ErrInvalidConfig)
		}
		c.Workers = n
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}

	return nil
}

// Validate reports every problem in the configuration at once. Each one wraps
// ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("config: "+format+": %w", append(args, ErrInvalidConfig)...))
	}

	if strings.TrimSpace(c.Field) == "" {
		add("field is empty")
	}
	if c.Workers < 1 {
		add("workers is %d, want at least 1", c.Workers)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level %q", c.Logging.Level)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		add("logging.format %q", c.Logging.Format)
	}
	if len(c.Jobs) == 0 {
		add("no jobs")
	}

	seen := make(map[string]int, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Source == "" {
			add("jobs[%d]: source is empty", i)
		}
		if j.Name != "" {
			if prev, dup := seen[j.Name]; dup {
				add("jobs[%d]: name %q already used by jobs[%d]", i, j.Name, prev)
			} else {
				seen[j.Name] = i
			}
		}
		switch {
		case j.BinderLength != 0 && j.BinderChain != "":
			add("jobs[%d]: binder_length and binder_chain are mutually exclusive", i)
		case j.BinderLength == 0 && j.BinderChain == "":
			add("jobs[%d]: one of binder_length or binder_chain is required", i)
		}
	}

	return errs
}

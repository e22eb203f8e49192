package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Jobs = []JobConfig{{Name: "a", Source: "a.json", BinderLength: 10}}

	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "pae", cfg.Field)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.FailFast)
	assert.Empty(t, cfg.Jobs)
	assert.Equal(t, "jsonl", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestExampleConfig_Validates(t *testing.T) {
	require.NoError(t, ExampleConfig().Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	content := `
field: predicted_aligned_error
workers: 2
fail_fast: true
jobs:
  - source: designs/d1_full_data_0.json
    binder_chain: A
  - name: d2
    source: /abs/d2.json
    field: pae
    binder_length: 57
output:
  format: tsv
  path: scores.tsv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "predicted_aligned_error", cfg.Field)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.FailFast)
	require.Len(t, cfg.Jobs, 2)
	assert.Equal(t, "d1_full_data_0", cfg.Jobs[0].Name)
	assert.Equal(t, "A", cfg.Jobs[0].BinderChain)
	assert.Equal(t, 57, cfg.Jobs[1].BinderLength)

	assert.Equal(t, "predicted_aligned_error", cfg.JobField(cfg.Jobs[0]))
	assert.Equal(t, "pae", cfg.JobField(cfg.Jobs[1]))

	assert.Equal(t, filepath.Join(dir, "designs/d1_full_data_0.json"), cfg.ResolvePath(cfg.Jobs[0].Source))
	assert.Equal(t, "/abs/d2.json", cfg.ResolvePath(cfg.Jobs[1].Source))

	// Fields left out of the file keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "tsv", cfg.Output.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1, 2\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "paescore.yaml")
	want := ExampleConfig()
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.Jobs, got.Jobs)
	assert.Equal(t, want.Output, got.Output)
	assert.Equal(t, want.Logging, got.Logging)
	assert.Equal(t, want.Workers, got.Workers)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all set", func(t *testing.T) {
		t.Setenv(EnvField, "pae_custom")
		t.Setenv(EnvWorkers, "16")
		t.Setenv(EnvLogLevel, "debug")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "pae_custom", cfg.Field)
		assert.Equal(t, 16, cfg.Workers)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		t.Setenv(EnvField, "")
		t.Setenv(EnvWorkers, "")
		t.Setenv(EnvLogLevel, "")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("bad workers", func(t *testing.T) {
		t.Setenv(EnvWorkers, "many")

		cfg := DefaultConfig()
		require.ErrorIs(t, cfg.applyEnvOverrides(), ErrInvalidConfig)
	})

	t.Run("applied by Load", func(t *testing.T) {
		t.Setenv(EnvWorkers, "3")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Workers)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty field", func(c *Config) { c.Field = " " }, "field is empty"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers is 0"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, `logging.level "loud"`},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, `logging.format "xml"`},
		{"no jobs", func(c *Config) { c.Jobs = nil }, "no jobs"},
		{"no source", func(c *Config) { c.Jobs[0].Source = "" }, "jobs[0]: source is empty"},
		{"both boundaries", func(c *Config) { c.Jobs[0].BinderChain = "A" }, "mutually exclusive"},
		{"no boundary", func(c *Config) { c.Jobs[0].BinderLength = 0 }, "is required"},
		{"duplicate name", func(c *Config) {
			c.Jobs = append(c.Jobs, JobConfig{Name: "a", Source: "b.json", BinderChain: "B"})
		}, `jobs[1]: name "a" already used by jobs[0]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Workers = -1
	cfg.Jobs[0].Source = ""
	cfg.Logging.Level = "loud"

	errs := multierr.Errors(cfg.Validate())
	assert.Len(t, errs, 3)
}

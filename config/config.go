// Package config holds the settings of the tautology command, read from a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	Prover ProverConfig `toml:"prover"`
	Table  TableConfig  `toml:"table"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// ProverConfig bounds the tableau search.
type ProverConfig struct {
	MaxSteps int      `toml:"max_steps"`
	Timeout  Duration `toml:"timeout"`
}

// TableConfig bounds the truth table generation.
type TableConfig struct {
	MaxVariables int `toml:"max_variables"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `toml:"level"`
	File    string `toml:"file"`
	Journal bool   `toml:"journal"`
}

// OutputConfig holds settings about how results are displayed.
type OutputConfig struct {
	Format string `toml:"format"` // "text" or "json"
	Verify bool   `toml:"verify"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prover: ProverConfig{MaxSteps: 1_000_000, Timeout: Duration{10 * time.Second}},
		Table:  TableConfig{MaxVariables: 16},
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Format: "text"},
	}
}

// Load loads configuration from a TOML file.
// Settings absent from the file keep their default value.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown setting %q in config %q", undec[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the file named by the TAUTOLOGY_CONFIG environment variable,
// or from the first default location holding a file.
// If there is no such file, the default configuration is returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("TAUTOLOGY_CONFIG"); path != "" {
		return Load(path)
	}
	paths := []string{"./tautology.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "tautology", "config.toml"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Validate checks that the settings are consistent.
func (cfg *Config) Validate() error {
	if cfg.Prover.MaxSteps < 0 {
		return fmt.Errorf("prover.max_steps must be positive, got %d", cfg.Prover.MaxSteps)
	}
	if cfg.Prover.Timeout.Duration < 0 {
		return fmt.Errorf("prover.timeout must be positive, got %v", cfg.Prover.Timeout)
	}
	if cfg.Table.MaxVariables < 0 || cfg.Table.MaxVariables > 26 {
		return fmt.Errorf("table.max_variables must be between 0 and 26, got %d", cfg.Table.MaxVariables)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return err
	}
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", cfg.Output.Format)
	}
	return nil
}

// SlogLevel returns the log level as a slog.Level.
func (lc LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(lc.Level)); err != nil {
		return lvl, fmt.Errorf("invalid log.level %q: %w", lc.Level, err)
	}
	return lvl, nil
}

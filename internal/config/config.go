package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"clifford/internal/attractor"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when none is given.
var DefaultPath = filepath.Join(".clifford", "config.yaml")

// Config holds all clifford configuration.
type Config struct {
	// Attractor coefficients used when no preset is named
	Attractor AttractorConfig `yaml:"attractor"`

	// Generation limits
	Generation GenerationConfig `yaml:"generation"`

	// Batch runs
	Batch BatchConfig `yaml:"batch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// AttractorConfig is the YAML form of attractor.Params.
type AttractorConfig struct {
	A  float64 `yaml:"a"`
	B  float64 `yaml:"b"`
	C  float64 `yaml:"c"`
	D  float64 `yaml:"d"`
	SD float64 `yaml:"sd"`
	S0 float64 `yaml:"s0"`
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
}

// GenerationConfig bounds how many points a single request may ask for.
type GenerationConfig struct {
	DefaultCount int `yaml:"default_count"` // used when the caller gives no count
	MaxCount     int `yaml:"max_count"`     // guards against accidental huge allocations
}

// BatchConfig configures concurrent runs over named presets.
type BatchConfig struct {
	Concurrency int                        `yaml:"concurrency"`
	Count       int                        `yaml:"count"`
	Presets     map[string]AttractorConfig `yaml:"presets"`
}

// FromParams converts attractor params to their config form.
func FromParams(p attractor.Params) AttractorConfig {
	return AttractorConfig{A: p.A, B: p.B, C: p.C, D: p.D, SD: p.SD, S0: p.S0, X0: p.X0, Y0: p.Y0}
}

// Params converts the config form to attractor params.
func (a AttractorConfig) Params() attractor.Params {
	return attractor.Params{A: a.A, B: a.B, C: a.C, D: a.D, SD: a.SD, S0: a.S0, X0: a.X0, Y0: a.Y0}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	classic := FromParams(attractor.DefaultParams())
	return &Config{
		Attractor: classic,

		Generation: GenerationConfig{
			DefaultCount: 1000,
			MaxCount:     50_000_000,
		},

		Batch: BatchConfig{
			Concurrency: 4,
			Count:       100_000,
			Presets: map[string]AttractorConfig{
				"classic": classic,
				"wings":   {A: -1.4, B: 1.6, C: 1.0, D: 0.7, SD: 0.007, S0: 0.007},
				"ribbon":  {A: 1.7, B: 1.7, C: 0.6, D: 1.2, SD: 0.007, S0: 0.007},
				"static":  {A: -1.3, B: -1.3, C: -1.8, D: -1.9},
			},
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Values that don't parse are ignored.
func (c *Config) applyEnvOverrides() {
	floats := []struct {
		env string
		dst *float64
	}{
		{"CLIFFORD_A", &c.Attractor.A},
		{"CLIFFORD_B", &c.Attractor.B},
		{"CLIFFORD_C", &c.Attractor.C},
		{"CLIFFORD_D", &c.Attractor.D},
		{"CLIFFORD_SD", &c.Attractor.SD},
	}
	for _, f := range floats {
		if v := os.Getenv(f.env); v != "" {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*f.dst = parsed
			}
		}
	}

	if v := os.Getenv("CLIFFORD_MAX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Generation.MaxCount = n
		}
	}
	if v := os.Getenv("CLIFFORD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Attractor.Params().Validate(); err != nil {
		return fmt.Errorf("attractor: %w", err)
	}
	if c.Generation.MaxCount < 1 {
		return fmt.Errorf("generation.max_count must be >= 1")
	}
	if c.Generation.DefaultCount < 0 || c.Generation.DefaultCount > c.Generation.MaxCount {
		return fmt.Errorf("generation.default_count must be between 0 and max_count (%d)", c.Generation.MaxCount)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be >= 1")
	}
	if c.Batch.Count < 0 || c.Batch.Count > c.Generation.MaxCount {
		return fmt.Errorf("batch.count must be between 0 and max_count (%d)", c.Generation.MaxCount)
	}
	for name, preset := range c.Batch.Presets {
		if err := preset.Params().Validate(); err != nil {
			return fmt.Errorf("batch preset %q: %w", name, err)
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json (got %q)", c.Logging.Format)
	}
	return nil
}

// CheckCount validates a requested iteration count against the configured ceiling.
func (c *Config) CheckCount(n int) error {
	if err := attractor.CheckCount(n); err != nil {
		return err
	}
	if n > c.Generation.MaxCount {
		return fmt.Errorf("%w: iteration count %d exceeds generation.max_count %d",
			attractor.ErrInvalidArgument, n, c.Generation.MaxCount)
	}
	return nil
}

// Preset returns the named batch preset.
func (c *Config) Preset(name string) (attractor.Params, bool) {
	p, ok := c.Batch.Presets[name]
	if !ok {
		return attractor.Params{}, false
	}
	return p.Params(), true
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Batch.Presets))
	for name := range c.Batch.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

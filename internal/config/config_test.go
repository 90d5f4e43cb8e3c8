package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"clifford/internal/attractor"

	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Attractor.Params() != attractor.DefaultParams() {
		t.Errorf("expected default attractor params, got %+v", cfg.Attractor)
	}
	if cfg.Generation.DefaultCount != 1000 {
		t.Errorf("expected DefaultCount=1000, got %d", cfg.Generation.DefaultCount)
	}
	if cfg.Batch.Concurrency != 4 {
		t.Errorf("expected Concurrency=4, got %d", cfg.Batch.Concurrency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Attractor.C = -1.7
	cfg.Generation.MaxCount = 5000
	cfg.Logging.DebugMode = true
	cfg.Logging.Categories = map[string]bool{"batch": false}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestConfig_LoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestConfig_LoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
attractor:
  a: 1.5
generation:
  max_count: 2000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Attractor.A != 1.5 {
		t.Errorf("expected A=1.5, got %v", cfg.Attractor.A)
	}
	if cfg.Attractor.D != attractor.DefaultD {
		t.Errorf("expected unset D to keep default, got %v", cfg.Attractor.D)
	}
	if cfg.Generation.MaxCount != 2000 || cfg.Generation.DefaultCount != 1000 {
		t.Errorf("unexpected generation config %+v", cfg.Generation)
	}
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("attractor: [not, a, map"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max count", func(c *Config) { c.Generation.MaxCount = 0 }},
		{"default above max", func(c *Config) { c.Generation.DefaultCount = c.Generation.MaxCount + 1 }},
		{"negative default", func(c *Config) { c.Generation.DefaultCount = -1 }},
		{"zero concurrency", func(c *Config) { c.Batch.Concurrency = 0 }},
		{"batch count above max", func(c *Config) { c.Batch.Count = c.Generation.MaxCount + 1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad preset", func(c *Config) {
			c.Batch.Presets["broken"] = AttractorConfig{A: 1, B: 1, C: 1, D: 1, SD: posInf()}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_CheckCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.MaxCount = 10

	if err := cfg.CheckCount(10); err != nil {
		t.Errorf("count at ceiling should pass: %v", err)
	}
	if err := cfg.CheckCount(11); !errors.Is(err, attractor.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument above ceiling, got %v", err)
	}
	if err := cfg.CheckCount(-1); !errors.Is(err, attractor.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for negative, got %v", err)
	}
}

func TestConfig_Presets(t *testing.T) {
	cfg := DefaultConfig()

	names := cfg.PresetNames()
	if diff := cmp.Diff([]string{"classic", "ribbon", "static", "wings"}, names); diff != "" {
		t.Errorf("preset names (-want +got):\n%s", diff)
	}

	p, ok := cfg.Preset("classic")
	if !ok || p != attractor.DefaultParams() {
		t.Errorf("classic preset should equal default params, got %+v ok=%v", p, ok)
	}
	if _, ok := cfg.Preset("missing"); ok {
		t.Error("expected missing preset lookup to fail")
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{}
	if lc.IsCategoryEnabled("generator") {
		t.Error("categories must be disabled outside debug mode")
	}

	lc.DebugMode = true
	if !lc.IsCategoryEnabled("generator") {
		t.Error("nil category map should enable everything")
	}

	lc.Categories = map[string]bool{"batch": false}
	if lc.IsCategoryEnabled("batch") {
		t.Error("batch explicitly disabled")
	}
	if !lc.IsCategoryEnabled("boot") {
		t.Error("unlisted categories default to enabled")
	}

	opts := lc.Options()
	if !opts.DebugMode || opts.Categories["batch"] {
		t.Errorf("unexpected options %+v", opts)
	}
}

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rgb-catcher/internal/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var fromYAML CatcherConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	builtin := DefaultCatcherConfig()
	if fromYAML.Basket != builtin.Basket {
		t.Errorf("basket: yaml %+v, builtin %+v", fromYAML.Basket, builtin.Basket)
	}
	if fromYAML.Block != builtin.Block {
		t.Errorf("block: yaml %+v, builtin %+v", fromYAML.Block, builtin.Block)
	}
	if fromYAML.Level != builtin.Level {
		t.Errorf("level: yaml %+v, builtin %+v", fromYAML.Level, builtin.Level)
	}
	if fromYAML.Timing != builtin.Timing {
		t.Errorf("timing: yaml %+v, builtin %+v", fromYAML.Timing, builtin.Timing)
	}
	if fromYAML.HUD != builtin.HUD {
		t.Errorf("hud: yaml %+v, builtin %+v", fromYAML.HUD, builtin.HUD)
	}
	if fromYAML.Input != builtin.Input {
		t.Errorf("input: yaml %+v, builtin %+v", fromYAML.Input, builtin.Input)
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("embedded YAML should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CatcherConfig)
		wantErr bool
	}{
		{"defaults", func(*CatcherConfig) {}, false},
		{"zero basket width", func(c *CatcherConfig) { c.Basket.Width = 0 }, true},
		{"negative fall speed", func(c *CatcherConfig) { c.Block.YSpeed = -1 }, true},
		{"zero strength is allowed", func(c *CatcherConfig) { c.Block.Strength = 0 }, false},
		{"no blocks per level", func(c *CatcherConfig) { c.Level.BlocksPerLevel = 0 }, true},
		{"zero tick rate", func(c *CatcherConfig) { c.Timing.PlayingTickRate = 0 }, true},
		{"bands out of order", func(c *CatcherConfig) { c.HUD.WarnAt = 80 }, true},
		{"unknown palette color", func(c *CatcherConfig) { c.Palette = []string{"red", "mauve"} }, true},
		{"single color palette", func(c *CatcherConfig) { c.Palette = []string{"green"} }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatcherConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestColors(t *testing.T) {
	cfg := DefaultCatcherConfig()
	cfg.Palette = nil

	colors, err := cfg.Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if len(colors) != 3 || colors[0] != core.ColorRed || colors[1] != core.ColorGreen || colors[2] != core.ColorBlue {
		t.Errorf("empty palette should fall back to RGB, got %v", colors)
	}

	cfg.Palette = []string{"Blue", " r "}
	colors, err = cfg.Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if colors[0] != core.ColorBlue || colors[1] != core.ColorRed {
		t.Errorf("palette names should be case and space insensitive, got %v", colors)
	}
}

func TestWithDefaults(t *testing.T) {
	def := DefaultCatcherConfig()

	basket := BasketConfig{Width: 30}.WithDefaults()
	if basket.Width != 30 || basket.Height != def.Basket.Height || basket.XSpeed != def.Basket.XSpeed {
		t.Errorf("basket defaults not applied: %+v", basket)
	}

	block := BlockConfig{}.WithDefaults()
	if block.Width != def.Block.Width || block.YSpeed != def.Block.YSpeed {
		t.Errorf("block defaults not applied: %+v", block)
	}
	if block.Strength != 0 {
		t.Errorf("zero strength should be preserved, got %d", block.Strength)
	}
}

func TestLoadCatcherCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "block:\n  strength: 7\nlevel:\n  blocks_per_level: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadCatcher(path)
	if err != nil {
		t.Fatalf("LoadCatcher() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Block.Strength != 7 || cfg.Level.BlocksPerLevel != 2 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults
	if cfg.Basket != DefaultCatcherConfig().Basket {
		t.Errorf("partial file should keep default basket, got %+v", cfg.Basket)
	}
}

func TestLoadCatcherCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadCatcher(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("basket: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadCatcher(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("basket:\n  width: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadCatcher(invalid); err == nil {
		t.Error("invalid values should be an error")
	}
}

func TestLoadCatcherFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, source, err := LoadCatcher("")
	if err != nil {
		t.Fatalf("LoadCatcher() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Level.BlocksPerLevel != DefaultCatcherConfig().Level.BlocksPerLevel {
		t.Errorf("unexpected config from embedded defaults: %+v", cfg.Level)
	}
}

func TestLoadCatcherLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "catcher.yaml"), []byte("block:\n  strength: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadCatcher("")
	if err != nil {
		t.Fatalf("LoadCatcher() failed: %v", err)
	}
	if source != filepath.Join("configs", "catcher.yaml") {
		t.Errorf("source = %q, expected the local configs file", source)
	}
	if cfg.Block.Strength != 3 {
		t.Errorf("local config not applied, strength = %d", cfg.Block.Strength)
	}
}

func TestRamp(t *testing.T) {
	r := NewRamp(DefaultCatcherConfig().Level)

	if r.SpawnSeconds() != 2 {
		t.Errorf("initial spawn interval = %f, expected 2", r.SpawnSeconds())
	}
	if r.FallSpeed(1) != 1 || r.BasketSpeed(1) != 1 {
		t.Error("level one should not scale speeds")
	}

	r.Advance()
	if math.Abs(r.SpawnSeconds()-1.98) > 1e-9 {
		t.Errorf("spawn interval after one level = %f, expected 1.98", r.SpawnSeconds())
	}
	if math.Abs(r.FallSpeed(1)-1.01) > 1e-9 {
		t.Errorf("fall speed after one level = %f, expected 1.01", r.FallSpeed(1))
	}
	if math.Abs(r.BasketSpeed(2)-2.04) > 1e-9 {
		t.Errorf("basket speed after one level = %f, expected 2.04", r.BasketSpeed(2))
	}

	r.Advance()
	if math.Abs(r.FallSpeed(1)-1.01*1.01) > 1e-9 {
		t.Errorf("multipliers should compound, got %f", r.FallSpeed(1))
	}

	r.Reset()
	if r.SpawnInterval().Seconds() != 2 || r.FallSpeed(1) != 1 {
		t.Error("Reset should restore level one difficulty")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names reported by LoadCatcher when no file path applies.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadCatcher loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.rgbcatcher/catcher.yaml -> ./configs/catcher.yaml -> embedded default.
// Files are applied on top of the defaults, so they only need the keys they change.
func LoadCatcher(customPath string) (CatcherConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatcherConfig{}, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseCatcher(data)
		if err != nil {
			return CatcherConfig{}, customPath, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return CatcherConfig{}, customPath, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("catcher.yaml"), filepath.Join("configs", "catcher.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseCatcher(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCatcher(defaultCatcherYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultCatcherConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// parseCatcher decodes YAML on top of the built-in defaults.
func parseCatcher(data []byte) (CatcherConfig, error) {
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatcherConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rgbcatcher", filename)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigDir is the project-relative directory searched after the user directory.
var localConfigDir = "configs"

// load reads a game config.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a partial file only overrides
// the keys it names. Only a failing customPath is reported; other candidates are
// skipped when unreadable.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"
	candidates := []string{}
	if p := userConfigPath(filename); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join(localConfigDir, filename))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadGoblin loads Goblin Runner configuration.
func LoadGoblin(customPath string) (GoblinConfig, error) {
	return load("goblin", customPath, defaultGoblinYAML, DefaultGoblinConfig)
}

// LoadInvasion loads Alien Invasion configuration.
func LoadInvasion(customPath string) (InvasionConfig, error) {
	return load("invasion", customPath, defaultInvasionYAML, DefaultInvasionConfig)
}

// LoadShield loads Shield Toss configuration.
func LoadShield(customPath string) (ShieldConfig, error) {
	return load("shield", customPath, defaultShieldYAML, DefaultShieldConfig)
}

// ApplyPreset modifies a difficulty config based on a named preset.
// An empty or unknown preset leaves the config untouched.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}

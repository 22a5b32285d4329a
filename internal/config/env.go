package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-wide options read from ARCADE_* environment variables.
// Command-line flags take these as their defaults.
type Settings struct {
	FPS         int           `env:"ARCADE_FPS"          envDefault:"60"`
	Seed        int64         `env:"ARCADE_SEED"         envDefault:"0"`
	DBPath      string        `env:"ARCADE_DB"           envDefault:"~/.arcade/scores.db"`
	Difficulty  string        `env:"ARCADE_DIFFICULTY"`
	Volume      float64       `env:"ARCADE_VOLUME"       envDefault:"0.5"`
	SSHAddr     string        `env:"ARCADE_SSH_ADDR"     envDefault:":23234"`
	HostKeyPath string        `env:"ARCADE_HOST_KEY"`
	IdleTimeout time.Duration `env:"ARCADE_IDLE_TIMEOUT" envDefault:"30m"`
	Fullscreen  bool          `env:"ARCADE_FULLSCREEN"   envDefault:"false"`
}

// DefaultSettings returns the settings used when the environment is empty.
func DefaultSettings() Settings {
	return Settings{
		FPS:         60,
		DBPath:      "~/.arcade/scores.db",
		Volume:      0.5,
		SSHAddr:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// LoadSettings parses the environment. On a malformed value it returns the
// defaults together with the error so callers can warn and continue.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: parse env: %w", err)
	}
	if s.FPS <= 0 {
		return DefaultSettings(), fmt.Errorf("config: ARCADE_FPS must be positive, got %d", s.FPS)
	}
	if _, err := ParsePreset(s.Difficulty); err != nil {
		return DefaultSettings(), err
	}
	s.Volume = clampF(s.Volume, 0.0, 1.0)
	return s, nil
}

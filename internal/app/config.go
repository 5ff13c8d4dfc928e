package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the data directory, e.g. $HOME/.tally.
	Home string `env:"TALLY_HOME"`
	File string `env:"TALLY_FILE" envDefault:"counters.txt"`
	// Passphrase seals the counters file when set.
	Passphrase   string        `env:"TALLY_PASSPHRASE"`
	LogLevel     string        `env:"TALLY_LOG_LEVEL" envDefault:"warn"`
	SaveAttempts uint          `env:"TALLY_SAVE_ATTEMPTS" envDefault:"3"`
	SaveDelay    time.Duration `env:"TALLY_SAVE_DELAY" envDefault:"50ms"`
}

// LoadConfig reads Config from the environment and fills in the default home.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, errors.Wrap(err, "resolve home directory")
		}
		cfg.Home = filepath.Join(dir, ".tally")
	}
	return cfg, nil
}

// CountersPath returns the counters file location. An absolute File wins over Home.
func (c Config) CountersPath() string {
	if filepath.IsAbs(c.File) {
		return c.File
	}
	return filepath.Join(c.Home, c.File)
}

package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

type LogConfig struct {
	Path       string `json:"path"`
	MaxSizeMb  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty"` // empty means prompt on startup
	Seed       uint64    `json:"seed"`       // 0 means seed from the clock
	Log        LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode: "production",
		Log: LogConfig{
			Path:       "minesweeper.log",
			MaxSizeMb:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Read loads config from path on top of the defaults, then applies
// MINESWEEPER_* environment overrides. A missing file is not an error; the
// game is playable with no config at all.
func Read(path string, config *Config) error {
	*config = Default()
	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, config); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	config.applyEnv()
	return nil
}

func (c *Config) applyEnv() {
	if mode, ok := os.LookupEnv("MINESWEEPER_MODE"); ok {
		c.Mode = mode
	}
	if diff, ok := os.LookupEnv("MINESWEEPER_DIFFICULTY"); ok {
		c.Difficulty = diff
	}
	if path, ok := os.LookupEnv("MINESWEEPER_LOG_PATH"); ok {
		c.Log.Path = path
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"mode":            c.Mode,
		"difficulty":      c.Difficulty,
		"seed":            c.Seed,
		"log_path":        c.Log.Path,
		"log_max_size_mb": c.Log.MaxSizeMb,
		"log_max_backups": c.Log.MaxBackups,
	}
}

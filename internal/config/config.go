package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	Level      string   `json:"level"`
	File       string   `json:"file"`
	MaxSize    int      `json:"max_size"` // megabytes
	MaxBackups int      `json:"max_backups"`
	MaxAge     Duration `json:"max_age"`
}

// MaxAgeDays rounds MaxAge up to whole days, the unit log rotation works in.
func (l LogConfig) MaxAgeDays() int {
	day := 24 * time.Hour
	return int((l.MaxAge.Duration + day - 1) / day)
}

type Config struct {
	Mode string     `json:"mode"`
	Game string     `json:"game"` // preset name, seed or query string
	Seed *[2]uint64 `json:"seed,omitempty"`
	Log  LogConfig  `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode: "production",
		Game: "classic",
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     Duration{7 * 24 * time.Hour},
		},
	}
}

// Load reads the JSON config at path over the defaults, then applies the
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	config.applyEnv()
	if _, err := config.LogLevel(); err != nil {
		return nil, err
	}
	if _, err := config.GameParams(); err != nil {
		return nil, err
	}
	return config, nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

func (c *Config) applyEnv() {
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = mode
	}
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok && development != "0" {
		c.Mode = "development"
	}
	if game, ok := os.LookupEnv("MINES_GAME"); ok {
		c.Game = game
	}
	if level, ok := os.LookupEnv("MINES_LOG_LEVEL"); ok {
		c.Log.Level = level
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = file
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// LogLevel is the configured level, raised to at least debug in development.
func (c Config) LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return level, fmt.Errorf("invalid log level: %w", err)
	}
	if c.Development() && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	return level, nil
}

func (c Config) GameParams() (mines.GameParams, error) {
	return ParseGame(c.Game)
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":            c.Mode,
		"game":            c.Game,
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge.Duration.String(),
	}
	if c.Seed != nil {
		fields["seed"] = fmt.Sprintf("%d:%d", c.Seed[0], c.Seed[1])
	}
	return fields
}

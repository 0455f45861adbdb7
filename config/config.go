package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	appDir         = "cinemax-cli"
	configFileName = "config.yaml"
	logFileName    = "cinemax.log"

	// LogFileNone disables logging.
	LogFileNone = "none"
)

type Config struct {
	Booking BookingConfig `yaml:"booking"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

type BookingConfig struct {
	Occupancy float64 `yaml:"occupancy"`
	Seed      uint64  `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type UIConfig struct {
	ShowSeatNumbers bool `yaml:"show_seat_numbers"`
}

func Default() Config {
	return Config{
		Booking: BookingConfig{Occupancy: 0.3},
		Log:     LogConfig{Level: "info"},
		UI:      UIConfig{ShowSeatNumbers: true},
	}
}

// Load reads the YAML file at path (or the default location when empty),
// then applies .env and CINEMAX_* environment overrides. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		cfg.Log.File = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Booking.Occupancy < 0 || c.Booking.Occupancy > 1 {
		return fmt.Errorf("booking.occupancy must be between 0 and 1, got %v", c.Booking.Occupancy)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("CINEMAX_OCCUPANCY")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid CINEMAX_OCCUPANCY: %w", err)
		}
		cfg.Booking.Occupancy = f
	}
	if v := strings.TrimSpace(os.Getenv("CINEMAX_SEED")); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid CINEMAX_SEED: %w", err)
		}
		cfg.Booking.Seed = seed
	}
	if v := strings.TrimSpace(os.Getenv("CINEMAX_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CINEMAX_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	return nil
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, logFileName), nil
}

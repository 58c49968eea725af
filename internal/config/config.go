// Package config resolves the viewer configuration from built-in defaults,
// an optional TOML file, and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultInterval = time.Second
	MinInterval     = 100 * time.Millisecond

	MinSpeed = 0.1
	MaxSpeed = 10.0
)

var (
	ErrBadInterval      = errors.New("invalid interval")
	ErrIntervalTooSmall = fmt.Errorf("interval must be at least %v", MinInterval)
)

// AppConfig is the fully resolved runtime configuration.
type AppConfig struct {
	Interval time.Duration // already divided by speed
	FilePath string
	Command  []string
	Watch    bool
}

// FileConfig mirrors the optional config file at
// ~/.config/grain/config.toml. Every field is a default that explicit flags
// override.
type FileConfig struct {
	Interval string   `toml:"interval"`
	File     string   `toml:"file"`
	Command  []string `toml:"command"`
	Speed    float64  `toml:"speed"`
	Watch    bool     `toml:"watch"`
}

// DefaultFilePath returns the standard config file location.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grain", "config.toml"), nil
}

// LoadFile reads a config file. A missing file is not an error; it yields the
// zero value.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseInterval parses duration strings like "100ms", "1", "2s". A bare
// number means seconds; fractions are allowed ("0.5" is 500ms). Anything
// below MinInterval is rejected.
func ParseInterval(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	unit := time.Second
	switch {
	case strings.HasSuffix(s, "ms"):
		unit = time.Millisecond
		s = strings.TrimSuffix(s, "ms")
	case strings.HasSuffix(s, "s"):
		s = strings.TrimSuffix(s, "s")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadInterval, s)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadInterval, s)
	}

	d := time.Duration(value * float64(unit))
	if d < MinInterval {
		return 0, ErrIntervalTooSmall
	}
	return d, nil
}

// FormatInterval renders a duration for the status line: whole seconds as
// "Ns", anything finer as milliseconds.
func FormatInterval(d time.Duration) string {
	ms := d.Milliseconds()
	if ms%1000 == 0 {
		return fmt.Sprintf("%ds", ms/1000)
	}
	return fmt.Sprintf("%dms", ms)
}

// ApplySpeed scales an interval by the speed multiplier, clamped to
// [MinSpeed, MaxSpeed]. Speed 2.0 refreshes twice as often.
func ApplySpeed(interval time.Duration, speed float64) time.Duration {
	if speed == 0 {
		return interval
	}
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return time.Duration(float64(interval) / speed)
}

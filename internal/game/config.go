package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/asciihero/internal/system"
	"github.com/samdwyer/asciihero/internal/world"
)

// ErrInvalidConfig is returned when configuration values cannot produce a game.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MaxRooms    int `yaml:"max_rooms"`
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`

	// GenerationAttempts bounds how many seeds are tried before giving up on an empty level.
	GenerationAttempts int `yaml:"generation_attempts"`

	PlayerSightRange  int `yaml:"player_sight_range"`
	MonsterSightRange int `yaml:"monster_sight_range"`

	// VisibilityPolicy is "dirty" (recompute moved viewers only) or "always".
	VisibilityPolicy string `yaml:"visibility_policy"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`

	// Telemetry enables the OTLP trace exporter.
	Telemetry bool `yaml:"telemetry"`
}

// DefaultConfig returns the standard 80x50 game.
func DefaultConfig() Config {
	return Config{
		Width:              world.DefaultWidth,
		Height:             world.DefaultHeight,
		MaxRooms:           world.DefaultMaxRooms,
		MinRoomSize:        world.DefaultMinSize,
		MaxRoomSize:        world.DefaultMaxSize,
		GenerationAttempts: 5,
		PlayerSightRange:   8,
		MonsterSightRange:  8,
		VisibilityPolicy:   system.RecomputeDirty.String(),
		LogLevel:           "info",
		LogFormat:          "text",
		LogFile:            "asciihero.log",
	}
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path if
// path is non-empty, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from ASCIIHERO_* and LOG_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ASCIIHERO_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: ASCIIHERO_SEED=%q", ErrInvalidConfig, v)
		}
		c.Seed = seed
	}
	if v, ok := lookup("ASCIIHERO_POLICY"); ok {
		c.VisibilityPolicy = v
	}
	if v, ok := lookup("ASCIIHERO_TELEMETRY"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: ASCIIHERO_TELEMETRY=%q", ErrInvalidConfig, v)
		}
		c.Telemetry = enabled
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.LogFormat = strings.ToLower(v)
	}
	return nil
}

// GenParams returns the generator parameters described by the config.
func (c Config) GenParams() world.GenParams {
	return world.GenParams{
		Width:    c.Width,
		Height:   c.Height,
		MaxRooms: c.MaxRooms,
		MinSize:  c.MinRoomSize,
		MaxSize:  c.MaxRoomSize,
	}
}

// Policy returns the parsed visibility policy.
func (c Config) Policy() (system.RecomputePolicy, error) {
	return system.ParseRecomputePolicy(c.VisibilityPolicy)
}

// Validate checks the config for values that would break generation or visibility.
func (c Config) Validate() error {
	if err := c.GenParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.PlayerSightRange <= 0 || c.MonsterSightRange <= 0 {
		return fmt.Errorf("%w: sight ranges must be positive", ErrInvalidConfig)
	}
	if c.GenerationAttempts <= 0 {
		return fmt.Errorf("%w: generation attempts must be positive", ErrInvalidConfig)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

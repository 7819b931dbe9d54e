package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for values out of range.
var ErrInvalidConfig = errors.New("invalid config")

// BattleSim holds all configuration of the self-play simulator.
type BattleSim struct {
	// Logging: debug, info, warn or error
	LogLevel string `yaml:"log_level"`

	// Batch
	Name      string        `yaml:"name"`
	Battles   int           `yaml:"battles"`
	FirstSeed uint64        `yaml:"first_seed"`
	Workers   int           `yaml:"workers"`
	Timeout   time.Duration `yaml:"timeout"` // whole batch, 0 = none

	// Battle rules
	Size     int  `yaml:"size"`
	Roaming  bool `yaml:"roaming"`
	MaxTurns int  `yaml:"max_turns"`

	// AI noise amplitude per level, overriding the level default
	AINoise map[int]float64 `yaml:"ai_noise"`

	// Sides
	Teams [2]Team `yaml:"teams"`

	// Optional YAML patches over the built-in move table
	MoveOverrides string `yaml:"move_overrides"`

	// Database (battle records)
	Database DatabaseConfig `yaml:"database"`
}

// Team is one side of the simulated battles.
type Team struct {
	AILevel int            `yaml:"ai_level"`
	Members []MemberConfig `yaml:"members"`
	Bag     map[string]int `yaml:"bag"`
}

// MemberConfig is one party member.
type MemberConfig struct {
	Species string   `yaml:"species"`
	Name    string   `yaml:"name"`
	Level   int      `yaml:"level"`
	Ability string   `yaml:"ability"`
	Item    string   `yaml:"item"`
	Moves   []string `yaml:"moves"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultBattleSim returns BattleSim config with sensible defaults:
// a hundred single battles between two level 5 trainers.
func DefaultBattleSim() BattleSim {
	return BattleSim{
		LogLevel:  "info",
		Name:      "selfplay",
		Battles:   100,
		FirstSeed: 1,
		Workers:   8,
		Size:      1,
		MaxTurns:  200,
		Teams: [2]Team{
			{
				AILevel: 5,
				Members: []MemberConfig{
					{Species: "charizard", Item: "charizardite_x"},
					{Species: "pikachu", Item: "leftovers"},
					{Species: "garchomp"},
				},
				Bag: map[string]int{"potion": 2, "full_heal": 1},
			},
			{
				AILevel: 5,
				Members: []MemberConfig{
					{Species: "blastoise"},
					{Species: "tyranitar", Item: "smooth_rock"},
					{Species: "gengar"},
				},
				Bag: map[string]int{"potion": 2, "full_heal": 1},
			},
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "monbattle",
			Password: "monbattle",
			DBName:   "monbattle",
			SSLMode:  "disable",
		},
	}
}

// LoadBattleSim loads the simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattleSim(path string) (BattleSim, error) {
	cfg := DefaultBattleSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the ranges of the config.
func (c BattleSim) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch {
	case c.Battles < 1:
		return fmt.Errorf("%w: battles %d", ErrInvalidConfig, c.Battles)
	case c.Size < 1 || c.Size > 3:
		return fmt.Errorf("%w: size %d", ErrInvalidConfig, c.Size)
	case c.MaxTurns < 1:
		return fmt.Errorf("%w: max_turns %d", ErrInvalidConfig, c.MaxTurns)
	}
	for i, team := range c.Teams {
		if len(team.Members) == 0 {
			return fmt.Errorf("%w: team %d has no members", ErrInvalidConfig, i)
		}
		if team.AILevel < -1 || team.AILevel > 7 {
			return fmt.Errorf("%w: team %d ai_level %d", ErrInvalidConfig, i, team.AILevel)
		}
	}
	for level, noise := range c.AINoise {
		if noise < 0 || noise > 1 {
			return fmt.Errorf("%w: ai_noise[%d] %v", ErrInvalidConfig, level, noise)
		}
	}
	return nil
}

// Noise returns the configured noise of level, or -1 for the level default.
func (c BattleSim) Noise(level int) float64 {
	if n, ok := c.AINoise[level]; ok {
		return n
	}
	return -1
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
}

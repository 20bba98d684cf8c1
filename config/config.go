package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/kataster/parameter"
)

// DefaultConfigFile is read from the working directory when no -config path is given
const DefaultConfigFile = "kataster.yaml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "KATASTER_"

var (
	ErrInvalidArena      = errors.New("invalid arena size")
	ErrInvalidTickRate   = errors.New("invalid tick rate")
	ErrInvalidLives      = errors.New("invalid starting lives")
	ErrInvalidEnemyCaps  = errors.New("invalid enemy limits")
	ErrInvalidVolume     = errors.New("invalid audio volume")
	ErrInvalidKeyBinding = errors.New("invalid key binding")
)

// Config is the resolved runtime configuration
// Precedence: defaults < YAML file < environment < command-line flags
type Config struct {
	Arena   ArenaConfig   `yaml:"arena" envPrefix:"ARENA_"`
	Game    GameConfig    `yaml:"game" envPrefix:"GAME_"`
	Audio   AudioConfig   `yaml:"audio" envPrefix:"AUDIO_"`
	Score   ScoreConfig   `yaml:"score" envPrefix:"SCORE_"`
	Metrics MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`

	// TickRate is simulation ticks per second
	TickRate int `yaml:"tick_rate" env:"TICK_RATE"`

	// Keys maps an input action to key names, see input.ParseKey
	Keys map[string][]string `yaml:"keys"`

	// States is an optional state graph file replacing the embedded one
	States string `yaml:"states" env:"STATES"`

	Debug bool `yaml:"debug" env:"DEBUG"`
}

// ArenaConfig is the playfield size in terminal cells
type ArenaConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// GameConfig holds gameplay tunables
type GameConfig struct {
	Lives               int           `yaml:"lives" env:"LIVES"`
	RespawnDelay        time.Duration `yaml:"respawn_delay" env:"RESPAWN_DELAY"`
	MaxEnemies          int           `yaml:"max_enemies" env:"MAX_ENEMIES"`
	MaxFormationMembers int           `yaml:"max_formation_members" env:"MAX_FORMATION_MEMBERS"`
	MaxAsteroids        int           `yaml:"max_asteroids" env:"MAX_ASTEROIDS"`
}

// AudioConfig controls the sound engine
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Muted   bool    `yaml:"muted" env:"MUTED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
}

// ScoreConfig controls high score persistence, an empty path disables it
type ScoreConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

// MetricsConfig controls the Prometheus endpoint, an empty address disables it
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  parameter.DefaultArenaWidth,
			Height: parameter.DefaultArenaHeight,
		},
		Game: GameConfig{
			Lives:               parameter.StartLife,
			RespawnDelay:        parameter.PlayerRespawnDelay,
			MaxEnemies:          parameter.MaxEnemies,
			MaxFormationMembers: parameter.MaxFormationMembers,
			MaxAsteroids:        parameter.MaxAsteroids,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.DefaultVolume,
		},
		Score: ScoreConfig{
			Path: "kataster.db",
		},
		TickRate: int(time.Second / parameter.TimeStep),
		Keys:     DefaultKeys(),
	}
}

// DefaultKeys returns the default action to key-name bindings
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"rotate_left":  {"Left", "a"},
		"rotate_right": {"Right", "d"},
		"thrust":       {"Up", "w"},
		"fire":         {"Space"},
		"pause":        {"p", "Esc"},
		"confirm":      {"Enter"},
		"mute":         {"m"},
		"quit":         {"q", "Ctrl-C"},
	}
}

// Load builds a Config from defaults, the YAML file at path and the environment
// An empty path falls back to DefaultConfigFile when it exists
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.MergeYAML(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MergeYAML overlays YAML document fields onto cfg, unknown fields are rejected
// Key bindings given in the document replace the defaults per action
func (c *Config) MergeYAML(data []byte) error {
	defaults := c.Keys
	c.Keys = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		c.Keys = defaults
		return err
	}

	merged := make(map[string][]string, len(defaults))
	for action, keys := range defaults {
		merged[action] = keys
	}
	for action, keys := range c.Keys {
		merged[action] = keys
	}
	c.Keys = merged
	return nil
}

// ApplyEnv overlays KATASTER_* environment variables
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects configurations the game cannot run with
func (c *Config) Validate() error {
	if c.Arena.Width < parameter.MinArenaWidth || c.Arena.Height < parameter.MinArenaHeight {
		return fmt.Errorf("%w: %dx%d, minimum %dx%d", ErrInvalidArena,
			c.Arena.Width, c.Arena.Height, parameter.MinArenaWidth, parameter.MinArenaHeight)
	}
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("%w: %d", ErrInvalidTickRate, c.TickRate)
	}
	if c.Game.Lives < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLives, c.Game.Lives)
	}
	if c.Game.MaxEnemies < 0 || c.Game.MaxFormationMembers < 1 || c.Game.MaxAsteroids < 1 {
		return fmt.Errorf("%w: enemies=%d formation=%d asteroids=%d", ErrInvalidEnemyCaps,
			c.Game.MaxEnemies, c.Game.MaxFormationMembers, c.Game.MaxAsteroids)
	}
	if c.Game.RespawnDelay < 0 {
		return fmt.Errorf("%w: negative respawn delay", ErrInvalidLives)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %.2f", ErrInvalidVolume, c.Audio.Volume)
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("%w: action %q has no keys", ErrInvalidKeyBinding, action)
		}
	}
	return nil
}

// TickInterval returns the simulation step duration
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

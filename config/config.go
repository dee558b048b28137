package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1pavlov/vibecoded-kids-games/parameter"
)

// Field is the initial play field size in world units
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Creature tunes the player creature
type Creature struct {
	Speed    float64 `yaml:"speed"`
	Segments int     `yaml:"segments"`
}

// Timing holds presentation-facing delays
type Timing struct {
	Hint      time.Duration `yaml:"hint_delay"`
	Celebrate time.Duration `yaml:"celebrate_delay"`
	Overlay   time.Duration `yaml:"overlay_delay"`
}

// Config is the runtime configuration, loaded from YAML over Default
type Config struct {
	Field    Field    `yaml:"field"`
	Creature Creature `yaml:"creature"`
	Timing   Timing   `yaml:"timing"`

	// WordsFile replaces the embedded word list when set; watched for changes
	WordsFile string `yaml:"words_file"`

	Audio bool   `yaml:"audio"`
	Debug bool   `yaml:"debug"`
	Seed  uint64 `yaml:"seed"` // 0 seeds from the clock
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Field: Field{
			Width:  parameter.DefaultFieldWidth,
			Height: parameter.DefaultFieldHeight,
		},
		Creature: Creature{
			Speed:    parameter.CreatureSpeed,
			Segments: parameter.InitialSegments,
		},
		Timing: Timing{
			Hint:      parameter.HintDelay,
			Celebrate: parameter.CelebrateDelay,
			Overlay:   parameter.OverlayDelay,
		},
		Audio: true,
	}
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML config file; an empty path yields Default
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
// Field sizes below the minimum are raised, not rejected
func (c *Config) Validate() error {
	if c.Creature.Speed <= 0 {
		return fmt.Errorf("config: creature speed must be positive, got %v", c.Creature.Speed)
	}
	if c.Creature.Segments < 1 {
		return fmt.Errorf("config: creature needs at least 1 segment, got %d", c.Creature.Segments)
	}
	if c.Timing.Hint < 0 || c.Timing.Celebrate < 0 || c.Timing.Overlay < 0 {
		return fmt.Errorf("config: delays must not be negative")
	}
	c.Field.Width = max(c.Field.Width, parameter.MinFieldWidth)
	c.Field.Height = max(c.Field.Height, parameter.MinFieldHeight)
	return nil
}

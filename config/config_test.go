package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/parameter"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Creature.Speed != parameter.CreatureSpeed {
		t.Errorf("Expected default speed %v, got %v", parameter.CreatureSpeed, cfg.Creature.Speed)
	}
	if !cfg.Audio {
		t.Error("Expected audio enabled by default")
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
field:
  width: 1024
creature:
  speed: 4.5
timing:
  hint_delay: 3s
audio: false
seed: 42
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Field.Width != 1024 {
		t.Errorf("Expected width 1024, got %v", cfg.Field.Width)
	}
	if cfg.Field.Height != parameter.DefaultFieldHeight {
		t.Errorf("Expected default height to survive, got %v", cfg.Field.Height)
	}
	if cfg.Creature.Speed != 4.5 {
		t.Errorf("Expected speed 4.5, got %v", cfg.Creature.Speed)
	}
	if cfg.Creature.Segments != parameter.InitialSegments {
		t.Errorf("Expected default segments, got %d", cfg.Creature.Segments)
	}
	if cfg.Timing.Hint != 3*time.Second {
		t.Errorf("Expected hint delay 3s, got %v", cfg.Timing.Hint)
	}
	if cfg.Audio {
		t.Error("Expected audio disabled")
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
}

func TestParseRaisesSmallField(t *testing.T) {
	cfg, err := Parse([]byte("field: {width: 100, height: 100}"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Field.Width != parameter.MinFieldWidth || cfg.Field.Height != parameter.MinFieldHeight {
		t.Errorf("Expected minimum field, got %vx%v", cfg.Field.Width, cfg.Field.Height)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero speed", "creature: {speed: 0}"},
		{"no segments", "creature: {segments: 0}"},
		{"negative delay", "timing: {hint_delay: -1s}"},
		{"malformed", "field: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}
}

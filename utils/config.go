package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Config holds the settings for a terminal run of the game.
type Config struct {
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	FrameRate      time.Duration `json:"frame_rate"`
	AliveChar      string        `json:"alive_char"`
	DeadChar       string        `json:"dead_char"`
	Seed           int64         `json:"seed"`
	MaxGenerations int           `json:"max_generations"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	ShowStats      bool          `json:"show_stats"`
}

// DefaultConfig returns the reference settings: a 30x120 board stepped every
// 100ms, drawn as 'X' on blank, seeded from the wall clock, running until
// interrupted.
func DefaultConfig() Config {
	return Config{
		Rows:           30,
		Cols:           120,
		FrameRate:      100 * time.Millisecond,
		AliveChar:      "X",
		DeadChar:       " ",
		Seed:           0,
		MaxGenerations: 0,
		UseMemoryPool:  true,
		ShowStats:      false,
	}
}

// LoadConfig loads configuration from a JSON file, layered over the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the engine itself does not police: non-positive
// dimensions and frame rates are usage errors at this layer, and each display
// character must be at most one character long.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	if _, _, err := c.CharPair(); err != nil {
		return err
	}
	return nil
}

// CharPair returns the alive and dead display runes. An empty setting stands
// for "use the engine default" and yields a zero rune for that role.
func (c Config) CharPair() (alive, dead rune, err error) {
	if alive, err = parseChar(c.AliveChar, "alive_char"); err != nil {
		return 0, 0, err
	}
	if dead, err = parseChar(c.DeadChar, "dead_char"); err != nil {
		return 0, 0, err
	}
	return alive, dead, nil
}

// parseChar converts a config string to a single display rune; empty selects
// the engine default via the zero rune.
func parseChar(s, field string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, errors.Errorf("[parseChar] %s is not valid UTF-8: %q", field, s)
	}
	if size != len(s) {
		return 0, errors.Errorf("[parseChar] %s must be a single character, got %q", field, s)
	}
	return r, nil
}

package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexichain/lexichain/lexicon"
	"github.com/lexichain/lexichain/puzzle"
	"github.com/lexichain/lexichain/wordgraph"
)

// ErrBadConfig is returned when a configuration fails validation.
var ErrBadConfig = errors.New("engine: invalid configuration")

// Config tunes the engine's word policy, default puzzle window, and
// category difficulty bases. The zero value is not valid; start from
// DefaultConfig or LoadConfig.
type Config struct {
	// MinWordLen and MaxWordLen bound admitted word lengths.
	MinWordLen int `yaml:"min_word_len"`
	MaxWordLen int `yaml:"max_word_len"`

	// MinDistance and MaxDistance are the default puzzle window used
	// when a caller passes a non-positive window to RandomPair.
	MinDistance int `yaml:"min_distance"`
	MaxDistance int `yaml:"max_distance"`

	// MaxAttempts bounds puzzle rejection sampling.
	MaxAttempts int `yaml:"max_attempts"`

	// Bases overrides per-category difficulty bases (1–5). Categories
	// absent here keep the lexicon defaults.
	Bases map[string]int `yaml:"category_bases,omitempty"`
}

// DefaultConfig mirrors the original game's constants: 3–6 letter
// words, a 3–6 move puzzle window, and 200 sampling attempts.
func DefaultConfig() Config {
	return Config{
		MinWordLen:  wordgraph.DefaultMinWordLen,
		MaxWordLen:  wordgraph.DefaultMaxWordLen,
		MinDistance: 3,
		MaxDistance: 6,
		MaxAttempts: puzzle.DefaultMaxAttempts,
	}
}

// LoadConfig reads a YAML file over DefaultConfig, so partial files
// override only the keys they mention.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("engine: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("engine: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// validate checks internal consistency of the configuration.
func (c Config) validate() error {
	if c.MinWordLen < 1 || c.MaxWordLen < c.MinWordLen {
		return fmt.Errorf("%w: word length bounds [%d, %d]", ErrBadConfig, c.MinWordLen, c.MaxWordLen)
	}
	if c.MinDistance < 1 || c.MaxDistance < c.MinDistance {
		return fmt.Errorf("%w: distance window [%d, %d]", ErrBadConfig, c.MinDistance, c.MaxDistance)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts %d", ErrBadConfig, c.MaxAttempts)
	}
	for cat, base := range c.Bases {
		if cat == "" {
			return fmt.Errorf("%w: empty category in bases", ErrBadConfig)
		}
		if base < lexicon.MinDifficulty || base > lexicon.MaxDifficulty {
			return fmt.Errorf("%w: base %d for category %q", ErrBadConfig, base, cat)
		}
	}

	return nil
}

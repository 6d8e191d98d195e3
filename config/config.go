// Package config loads game settings. Defaults suit a standard game;
// every option can be overridden by a COUNTDOWN_-prefixed environment
// variable or an optional config file supplied by the hosting layer.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Difficulty selects the word pool and scramble flavor for conundrums.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Config holds the recognized game options.
type Config struct {
	// AutoDictionary turns on strict dictionary checking for letters-round
	// words. When false, submitted words are trusted (freeform mode).
	AutoDictionary bool `mapstructure:"auto_dictionary"`

	// ConundrumLength is the answer length for conundrum rounds.
	ConundrumLength int `mapstructure:"conundrum_length"`

	// Macro is the overall difficulty: easy, medium, or hard.
	Macro Difficulty `mapstructure:"macro"`

	// ConundrumLives enables buzz-in lives mode for conundrums.
	ConundrumLives bool `mapstructure:"conundrum_lives"`

	// DictionaryPath is where the hosting layer finds the word list.
	DictionaryPath string `mapstructure:"dictionary_path"`

	// RoundSequence is the planned order of rounds ("letters", "numbers",
	// "conundrum"). Empty means free play with no planned end.
	RoundSequence []string `mapstructure:"round_sequence"`
}

// Load reads configuration from defaults, the environment, and optionally
// a YAML config file (empty path skips the file).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("auto_dictionary", true)
	v.SetDefault("conundrum_length", 9)
	v.SetDefault("macro", string(Medium))
	v.SetDefault("conundrum_lives", false)
	v.SetDefault("dictionary_path", "words/english.txt")

	v.SetEnvPrefix("countdown")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the standard-game configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults always validate; reaching here is a programming error.
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Macro {
	case Easy, Medium, Hard:
	default:
		return fmt.Errorf("unrecognized macro difficulty %q", c.Macro)
	}
	if c.ConundrumLength < 3 || c.ConundrumLength > 15 {
		return fmt.Errorf("conundrum length %d out of range", c.ConundrumLength)
	}
	return nil
}

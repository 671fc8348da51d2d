// Package config provides Viper-based configuration loading for the scorekeeper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig holds the rules applied to every game.
type GameConfig struct {
	// TargetScore is the score that starts the last turn once any player reaches it.
	TargetScore int `mapstructure:"target_score"`
	// MinPlayers is the roster size required to start a game.
	MinPlayers int `mapstructure:"min_players"`
	// ScoresFile optionally replaces the built-in scoring table with a YAML file.
	ScoresFile string `mapstructure:"scores_file"`
}

// ConsoleConfig holds settings for the line-oriented frontend.
type ConsoleConfig struct {
	// Color enables ANSI colour output.
	Color bool `mapstructure:"color"`
	// Prompt is written before every input line.
	Prompt string `mapstructure:"prompt"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is where log entries are written. Empty means stderr, keeping
	// the console on stdout readable.
	File string `mapstructure:"file"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.TargetScore < 1 {
		errs = append(errs, fmt.Sprintf("game.target_score must be >= 1, got %d", g.TargetScore))
	}
	if g.MinPlayers < 2 {
		errs = append(errs, fmt.Sprintf("game.min_players must be >= 2, got %d", g.MinPlayers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with PIGS_ prefix
	v.SetEnvPrefix("PIGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.target_score", 100)
	v.SetDefault("game.min_players", 2)
	v.SetDefault("game.scores_file", "")

	v.SetDefault("console.color", true)
	v.SetDefault("console.prompt", "pigs> ")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

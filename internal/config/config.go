package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the cleaning options
type Config struct {
	FilterBlanks  bool   `mapstructure:"filter_blanks"`
	Sort          string `mapstructure:"sort"` // "descending" or "input"
	ValidateDates bool   `mapstructure:"validate_dates"`
	InPlace       bool   `mapstructure:"in_place"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load returns the configuration, merged from a TOML file when configPath
// is non-empty and from defaults otherwise
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("filter_blanks", false)
	v.SetDefault("sort", "descending")
	v.SetDefault("validate_dates", false)
	v.SetDefault("in_place", false)
	v.SetDefault("verbose", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects option values outside the documented set
func (c *Config) Validate() error {
	switch c.Sort {
	case "descending", "input":
		return nil
	default:
		return fmt.Errorf("invalid sort order %q (want \"descending\" or \"input\")", c.Sort)
	}
}

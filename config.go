package shipdash

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional config file looked up in
// the working directory.
const ConfigName = "shipdash"

// Fixed locations of the input file and the output directory.
const (
	DefaultInput     = "files/input/shipping-data.csv"
	DefaultOutputDir = "docs"
)

// Config holds the settings of a dashboard run. Input and OutputDir are
// always DefaultInput and DefaultOutputDir when loaded; a config file can
// only change the look of the page and the log level.
type Config struct {
	Input           string  `mapstructure:"-"`
	OutputDir       string  `mapstructure:"-"`
	Title           string  `mapstructure:"title"`
	Bins            int     `mapstructure:"bins"`
	RatingThreshold float64 `mapstructure:"rating_threshold"`
	LogLevel        string  `mapstructure:"log_level"`
}

// DefaultConfig returns the configuration used when no config file
// exists.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	cfg.Input, cfg.OutputDir = DefaultInput, DefaultOutputDir
	return cfg
}

// LoadConfig reads the YAML config file at path over the defaults. An
// empty path looks for shipdash.yaml in the working directory and
// falls back to the defaults if there is none. Environment variables
// are not consulted, and input or output_dir keys in the file are
// ignored.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %v", ErrConfig, err)
	}
	cfg.Input, cfg.OutputDir = DefaultInput, DefaultOutputDir
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "Shipping Dashboard Example")
	v.SetDefault("bins", 10)
	v.SetDefault("rating_threshold", 3.0)
	v.SetDefault("log_level", "info")
}

var validLogLevels = map[string]bool{
	"debug":    true,
	"info":     true,
	"warn":     true,
	"error":    true,
	"disabled": true,
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is required", ErrConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is required", ErrConfig)
	}
	if c.Bins < 1 {
		return fmt.Errorf("%w: bins must be at least 1", ErrConfig)
	}
	if c.RatingThreshold < 1 || c.RatingThreshold > 5 {
		return fmt.Errorf("%w: rating_threshold must be between 1 and 5", ErrConfig)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: log_level must be one of: debug, info, warn, error, disabled", ErrConfig)
	}
	return nil
}

// Theme returns DefaultTheme adjusted by c.
func (c *Config) Theme() Theme {
	t := DefaultTheme
	t.RatingThreshold = c.RatingThreshold
	return t
}

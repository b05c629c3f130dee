// Package config loads the demo configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	apperrors "github.com/authcorp/kinded/internal/errors"
)

// Config is the demo configuration. Every field has a default, so the demo
// runs with no file and no environment.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Demo    DemoConfig    `mapstructure:"demo" validate:"required"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// DemoConfig defines the samples and how they are printed.
type DemoConfig struct {
	Output      string `mapstructure:"output" validate:"required,oneof=text yaml"`
	LeftSuffix  string `mapstructure:"left_suffix" validate:"required"`
	RightSuffix string `mapstructure:"right_suffix" validate:"required"`
	Word        string `mapstructure:"word" validate:"required"`
	Number      int    `mapstructure:"number"`
	Increment   int    `mapstructure:"increment"`
}

var configValidator = validator.New()

// Load reads kinded.yaml from the working directory or ./configs if present,
// applies KINDED_* environment overrides and validates the result.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("kinded")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("KINDED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperrors.InvalidConfig(err, "failed to read config file")
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.InvalidConfig(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return apperrors.InvalidConfig(formatValidationError(err), "configuration validation failed")
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("demo.output", "text")
	v.SetDefault("demo.left_suffix", "tata1")
	v.SetDefault("demo.right_suffix", "tata2")
	v.SetDefault("demo.word", "toto")
	v.SetDefault("demo.number", 42)
	v.SetDefault("demo.increment", 1)
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "PAVE"
	EnvConfigFile = "PAVE_CONFIG_FILE"

	KeyOutput   = "output"
	KeyLogLevel = "log_level"

	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Config struct {
	Output   string `validate:"oneof=text json yaml"`
	LogLevel string `validate:"oneof=trace debug info warn error fatal panic disabled"`
}

type Options struct {
	// ConfigFile overrides PAVE_CONFIG_FILE.
	ConfigFile string
	// Flags, when set, take precedence over the environment and file.
	// Flag names are the config keys with "-" for "_".
	Flags *pflag.FlagSet
}

// Load resolves the configuration from flags, PAVE_* environment variables,
// an optional config file and defaults, in that order.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyLogLevel, "warn")

	path := opts.ConfigFile
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if opts.Flags != nil {
		for key, name := range map[string]string{KeyOutput: "output", KeyLogLevel: "log-level"} {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Output:   v.GetString(KeyOutput),
		LogLevel: v.GetString(KeyLogLevel),
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = func() func(*Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	return func(cfg *Config) error {
		err := v.Struct(cfg)
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		switch verrs[0].StructField() {
		case "Output":
			return fmt.Errorf("%w: %q", ErrInvalidOutput, cfg.Output)
		default:
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
		}
	}
}()

package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	// Language is the locale used for generated descriptions and notes.
	Language string `mapstructure:"language" yaml:"language"`

	Server struct {
		Port      int    `mapstructure:"port" yaml:"port"`
		UploadDir string `mapstructure:"upload_dir" yaml:"upload_dir"`
	} `mapstructure:"server" yaml:"server"`

	Firefly struct {
		URL    string `mapstructure:"url" yaml:"url"`
		Token  string `mapstructure:"token" yaml:"-"`
		Secret string `mapstructure:"secret" yaml:"-"`
	} `mapstructure:"firefly" yaml:"firefly"`

	Watch struct {
		InputDir  string `mapstructure:"input_dir" yaml:"input_dir"`
		OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	} `mapstructure:"watch" yaml:"watch"`
}

// InitializeConfig initializes viper configuration with hierarchical
// loading: defaults, then an optional config file, then STMT_-prefixed
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-csv")
	v.AddConfigPath(".statement-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file is worth a warning but not a refusal
			// to start. Defaults and env vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// Credentials come from unprefixed env vars so they can be shared
	// with other Firefly tooling.
	if err := v.BindEnv("firefly.token", "FIREFLY_TOKEN"); err != nil {
		fmt.Printf("Warning: failed to bind FIREFLY_TOKEN environment variable: %v\n", err)
	}
	if err := v.BindEnv("firefly.secret", "FIREFLY_SECRET"); err != nil {
		fmt.Printf("Warning: failed to bind FIREFLY_SECRET environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("language", "en")

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.upload_dir", "uploads")

	v.SetDefault("firefly.url", "")

	v.SetDefault("watch.input_dir", "input")
	v.SetDefault("watch.output_dir", "output")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", config.Server.Port)
	}

	return nil
}

// Package config loads command line configuration from flags, environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. SETCOVER_LOG_LEVEL.
const EnvPrefix = "SETCOVER"

// Config is the resolved command line configuration.
type Config struct {
	Store     string `mapstructure:"store"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`

	MinioAccessKey string `mapstructure:"minio-access-key"`
	MinioSecretKey string `mapstructure:"minio-secret-key"`

	Mode        string `mapstructure:"mode"`
	Bitmap      string `mapstructure:"bitmap"`
	Sorted      bool   `mapstructure:"sorted"`
	Concurrency int    `mapstructure:"concurrency"`

	Sets     int   `mapstructure:"sets"`
	Universe int   `mapstructure:"universe"`
	Draws    int   `mapstructure:"draws"`
	Seed     int64 `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store", "file://.")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("minio-access-key", "")
	v.SetDefault("minio-secret-key", "")

	v.SetDefault("mode", "bitset")
	v.SetDefault("bitmap", "dense")
	v.SetDefault("sorted", true)
	v.SetDefault("concurrency", 4)

	v.SetDefault("sets", 100)
	v.SetDefault("universe", 1000)
	v.SetDefault("draws", 20)
	v.SetDefault("seed", 1)
}

// Load resolves the configuration. Precedence is flags, then environment,
// then the config file, then defaults. configFile may be empty, in which case
// setcover.yaml is read from the working directory if present.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("setcover")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

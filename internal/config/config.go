// Package config loads grsvalidator settings from a YAML file, the
// environment and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. GRSVALIDATOR_LOG_LEVEL.
	EnvPrefix = "GRSVALIDATOR"
	// ConfigEnv points at a config file, overriding the search path.
	ConfigEnv = EnvPrefix + "_CONFIG"
	// ConfigName is the file searched for in the current and home directories.
	ConfigName = "grsvalidator"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"network":    "network",
	"workers":    "workers",
	"listen":     "listen",
	"output":     "output",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Config holds every setting.
type Config struct {
	// Restrict validation to one network. Empty accepts all.
	Network string    `mapstructure:"network" yaml:"network"`
	Workers int       `mapstructure:"workers" yaml:"workers"`
	Listen  string    `mapstructure:"listen" yaml:"listen"`
	Output  string    `mapstructure:"output" yaml:"output"`
	Log     LogConfig `mapstructure:"log" yaml:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

func getViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + "/." + ConfigName)
	}

	v.SetDefault("network", "")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("listen", ":8080")
	v.SetDefault("output", OutputText)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "color-text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. path names a config file that must exist;
// when empty, ConfigEnv is consulted and then the search path, and a missing
// file is not an error. Flags that were set on the command line win over
// everything else.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := getViper()

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if _, err := c.ParsedNetwork(); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output %q: options are %s, %s, %s", c.Output,
			OutputText, OutputJSON, OutputYAML)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return CheckLogFormat(c.Log.Format)
}

// ParsedNetwork returns the configured network, or "" when validation is not
// restricted to one.
func (c *Config) ParsedNetwork() (chaincfg.Network, error) {
	if c.Network == "" {
		return "", nil
	}
	return chaincfg.ParseNetwork(c.Network)
}

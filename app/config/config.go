// Package config loads blogpress settings with Viper from defaults, an
// optional YAML file, a .env file and BLOGPRESS_ environment variables.
//
// Precedence, highest first: command-line flags bound into Viper, environment
// variables (BLOGPRESS_SERVER_PORT, BLOGPRESS_STORAGE_DRIVER, ...), the config
// file, then the defaults registered by SetDefaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable Viper reads.
const EnvPrefix = "BLOGPRESS"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	CSRF    CSRFConfig    `mapstructure:"csrf"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Stubs   StubsConfig   `mapstructure:"stubs"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr is the listen address for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type SessionConfig struct {
	Name string `mapstructure:"name"`
	// Secret signs the flash cookie. A random one is generated per process
	// when empty, so notices do not survive a restart.
	Secret string `mapstructure:"secret"`
	Secure bool   `mapstructure:"secure"`
}

type CSRFConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type StubsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type SeedConfig struct {
	Posts int `mapstructure:"posts"`
}

// SetDefaults registers every key so that environment variables are picked
// up by Unmarshal even when no config file mentions them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("session.name", "blogpress")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.secure", false)
	v.SetDefault("csrf.enabled", true)
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("stubs.enabled", true)
	v.SetDefault("seed.posts", 0)
}

// New returns a Viper instance with defaults and environment binding set up.
// When configFile is empty an optional blogpress.yaml in the working
// directory is used.
func New(configFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("blogpress")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile reads the config file if there is one. A missing default file is
// not an error; a missing file named explicitly is.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

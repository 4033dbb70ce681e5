// Package config loads learnhub settings from defaults, an optional YAML
// file, LEARNHUB_* environment variables, and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const EnvPrefix = "LEARNHUB"

var ErrUnknownBackend = errors.New("unknown storage backend")

type Config struct {
	Env     string        `mapstructure:"env"` // "production" switches the logger to JSON
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	Persist PersistConfig `mapstructure:"persist"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CatalogConfig points at an external catalog file. Empty means the
// embedded catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type StorageConfig struct {
	Backend string       `mapstructure:"backend"`
	Key     string       `mapstructure:"key"` // record name the progress payload is stored under
	SQLite  SQLiteConfig `mapstructure:"sqlite"`
	File    FileConfig   `mapstructure:"file"`
	Redis   RedisConfig  `mapstructure:"redis"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type FileConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type PersistConfig struct {
	// FlushTimeout bounds how long exit waits for the last save. Zero
	// waits until it finishes.
	FlushTimeout time.Duration `mapstructure:"flush_timeout"`

	// SaveTimeout is the deadline given to each backend write.
	SaveTimeout time.Duration `mapstructure:"save_timeout"`
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"backend":   "storage.backend",
	"db":        "storage.sqlite.path",
	"catalog":   "catalog.path",
	"log-level": "log.level",
}

// Load resolves the configuration. flags may be nil; flags that exist but
// were not set on the command line do not override other sources.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DataDir())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DataDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "warn")
	v.SetDefault("catalog.path", "")
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.key", "learnhub-progress")
	v.SetDefault("storage.sqlite.path", filepath.Join(dataDir, "learnhub.db"))
	v.SetDefault("storage.file.path", filepath.Join(dataDir, "progress.json"))
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("persist.flush_timeout", "2s")
	v.SetDefault("persist.save_timeout", "5s")
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q (want sqlite, file, redis or memory)", ErrUnknownBackend, c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return errors.New("storage.key must not be empty")
	}
	if c.Persist.FlushTimeout < 0 {
		return fmt.Errorf("persist.flush_timeout must not be negative, got %s", c.Persist.FlushTimeout)
	}
	if c.Persist.SaveTimeout < 0 {
		return fmt.Errorf("persist.save_timeout must not be negative, got %s", c.Persist.SaveTimeout)
	}
	return nil
}

// DataDir is ~/.learnhub, or .learnhub in the working directory when the
// home directory cannot be determined.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".learnhub"
	}
	return filepath.Join(home, ".learnhub")
}

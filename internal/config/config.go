package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	redisstore "github.com/ordkamp/ordkamp/internal/storage/redis"
)

// StorageKind selects the persistence backend
type StorageKind string

const (
	StorageMemory StorageKind = "memory"
	StorageRedis  StorageKind = "redis"
)

// Config is the full server configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	Kind  StorageKind       `yaml:"kind"`
	Redis redisstore.Config `yaml:"redis"`
}

type DictionaryConfig struct {
	// WordFile is a newline-separated word list loaded at startup when
	// storage holds no dictionary yet.
	WordFile string `yaml:"word_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    0, // SSE streams must not be cut off by a write deadline
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Kind:  StorageMemory,
			Redis: redisstore.DefaultConfig(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment overrides on top. A missing customPath is an error; a missing
// default file is not.
func Load(customPath string) (Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		path = "ordkamp.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if customPath != "" {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ORDKAMP_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ORDKAMP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ORDKAMP_STORAGE"); v != "" {
		cfg.Storage.Kind = StorageKind(v)
	}
	if v := os.Getenv("ORDKAMP_REDIS_URL"); v != "" {
		cfg.Storage.Redis.URL = v
	}
	if v := os.Getenv("ORDKAMP_WORD_FILE"); v != "" {
		cfg.Dictionary.WordFile = v
	}
	if v := os.Getenv("ORDKAMP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ORDKAMP_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Addr is the listen address in host:port form
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

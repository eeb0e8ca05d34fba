package config

import (
	"os"
	"time"
)

// Storage backends accepted by StorageBackend.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds runtime settings for the goalline client.
//
// Fields:
//   - BaseURL: backend root every endpoint is relative to, e.g. http://host/api/v1.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - StorageBackend: where the session is persisted (sqlite, redis, memory).
//   - DatabasePath: SQLite file; "~" expands to the home directory.
//   - RedisAddr, RedisPrefix: Redis location and key namespace.
//   - BreakerEnabled, BreakerFailures, BreakerCooldown: fail-fast after
//     consecutive transport failures.
//   - LogLevel, LogFormat: see logging.New.
type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	StorageBackend  string
	DatabasePath    string
	RedisAddr       string
	RedisPrefix     string
	BreakerEnabled  bool
	BreakerFailures uint32
	BreakerCooldown time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.StorageBackend = StorageSQLite
	c.DatabasePath = "~/.goalline/session.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = "goalline:"
	c.BreakerEnabled = false
	c.BreakerFailures = 5
	c.BreakerCooldown = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Load builds a Config from defaults, then the environment (including a
// .env file in the working directory), then the config file named by -c or
// -config, then command-line flags. Later sources take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	loadDotEnv()
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

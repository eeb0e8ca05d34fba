// Package config handles configuration for the stub backend: defaults, an
// optional JSON file, then command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the stub backend.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - TokenTTL: access token lifetime.
//   - PageSizeDefault / PageSizeMax: listing page size when none or too large is asked for.
type Config struct {
	Addr            string
	SecretKey       string
	TokenTTL        time.Duration
	PageSizeDefault int
	PageSizeMax     int
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates Config with development defaults. The secret is
// not meant for anything but local use.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.SecretKey = "goalline-stub-secret"
	c.TokenTTL = 60 * time.Minute
	c.PageSizeDefault = 20
	c.PageSizeMax = 100
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// Load builds a Config from defaults, the JSON file named by -c/-config and
// flags found in args.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/goalline/internal/flagx"
	"github.com/dmitrijs2005/goalline/internal/timex"
)

// JSONConfig is the on-disk shape of the config file. Durations accept both
// "1m" strings and integer nanoseconds. Missing fields keep their defaults.
type JSONConfig struct {
	Addr            string         `json:"addr"`
	SecretKey       string         `json:"secret_key"`
	TokenTTL        timex.Duration `json:"token_ttl"`
	PageSizeDefault int            `json:"page_size_default"`
	PageSizeMax     int            `json:"page_size_max"`
	LogLevel        string         `json:"log_level"`
	LogFormat       string         `json:"log_format"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)

	// nothing to load
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	if c.SecretKey != "" {
		cfg.SecretKey = c.SecretKey
	}
	if c.TokenTTL.Duration != 0 {
		cfg.TokenTTL = time.Duration(c.TokenTTL.Duration)
	}
	if c.PageSizeDefault > 0 {
		cfg.PageSizeDefault = c.PageSizeDefault
	}
	if c.PageSizeMax > 0 {
		cfg.PageSizeMax = c.PageSizeMax
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.LogFormat = c.LogFormat
	}
	return nil
}

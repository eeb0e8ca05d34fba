package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/goalline/internal/flagx"
	"github.com/dmitrijs2005/goalline/internal/timex"
	"gopkg.in/yaml.v2"
)

// FileConfig is the on-disk shape of the config file. JSON and YAML share
// the field names; durations go through timex.Duration so "3s" and integer
// nanoseconds both work. Fields left out of the file keep their prior value.
type FileConfig struct {
	BaseURL         string         `json:"base_url" yaml:"base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	StorageBackend  string         `json:"storage_backend" yaml:"storage_backend"`
	DatabasePath    string         `json:"database_path" yaml:"database_path"`
	RedisAddr       string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPrefix     string         `json:"redis_prefix" yaml:"redis_prefix"`
	BreakerEnabled  *bool          `json:"breaker_enabled" yaml:"breaker_enabled"`
	BreakerFailures uint32         `json:"breaker_failures" yaml:"breaker_failures"`
	BreakerCooldown timex.Duration `json:"breaker_cooldown" yaml:"breaker_cooldown"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
	LogFormat       string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config in args.
// The format follows the extension: .yaml/.yml is YAML, anything else JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setStr(&cfg.BaseURL, fc.BaseURL)
	setStr(&cfg.StorageBackend, fc.StorageBackend)
	setStr(&cfg.DatabasePath, fc.DatabasePath)
	setStr(&cfg.RedisAddr, fc.RedisAddr)
	setStr(&cfg.RedisPrefix, fc.RedisPrefix)
	setStr(&cfg.LogLevel, fc.LogLevel)
	setStr(&cfg.LogFormat, fc.LogFormat)

	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.BreakerCooldown.Duration > 0 {
		cfg.BreakerCooldown = fc.BreakerCooldown.Duration
	}
	if fc.BreakerEnabled != nil {
		cfg.BreakerEnabled = *fc.BreakerEnabled
	}
	if fc.BreakerFailures > 0 {
		cfg.BreakerFailures = fc.BreakerFailures
	}
}

package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvBaseURL         = "GOALLINE_BASE_URL"
	EnvRequestTimeout  = "GOALLINE_REQUEST_TIMEOUT"
	EnvStorage         = "GOALLINE_STORAGE"
	EnvDatabasePath    = "GOALLINE_DB_PATH"
	EnvRedisAddr       = "GOALLINE_REDIS_ADDR"
	EnvRedisPrefix     = "GOALLINE_REDIS_PREFIX"
	EnvBreaker         = "GOALLINE_BREAKER"
	EnvBreakerFailures = "GOALLINE_BREAKER_FAILURES"
	EnvBreakerCooldown = "GOALLINE_BREAKER_COOLDOWN"
	EnvLogLevel        = "GOALLINE_LOG_LEVEL"
	EnvLogFormat       = "GOALLINE_LOG_FORMAT"
)

// loadDotEnv copies .env entries into the environment without overriding
// variables that are already set. A missing file is fine.
func loadDotEnv() {
	_ = godotenv.Load()
}

type lookupFunc func(key string) (string, bool)

// parseEnv overlays cfg with GOALLINE_* variables.
func parseEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str(EnvBaseURL, &cfg.BaseURL)
	str(EnvStorage, &cfg.StorageBackend)
	str(EnvDatabasePath, &cfg.DatabasePath)
	str(EnvRedisAddr, &cfg.RedisAddr)
	str(EnvRedisPrefix, &cfg.RedisPrefix)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvLogFormat, &cfg.LogFormat)

	if err := dur(EnvRequestTimeout, &cfg.RequestTimeout); err != nil {
		return err
	}
	if err := dur(EnvBreakerCooldown, &cfg.BreakerCooldown); err != nil {
		return err
	}

	if v, ok := lookup(EnvBreaker); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBreaker, err)
		}
		cfg.BreakerEnabled = b
	}
	if v, ok := lookup(EnvBreakerFailures); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBreakerFailures, err)
		}
		cfg.BreakerFailures = uint32(n)
	}
	return nil
}

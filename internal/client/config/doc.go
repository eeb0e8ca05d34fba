// Package config loads runtime configuration for the goalline client.
//
// Sources & precedence (lowest to highest):
//  1. Built-in defaults (LoadDefaults).
//  2. Environment: GOALLINE_* variables, with a .env file in the working
//     directory loaded first. Variables already set win over .env.
//  3. Config file named by -c or -config. .yaml/.yml is YAML, otherwise JSON.
//  4. Command-line flags (-u, -t, -s, -d, -l).
//
// Example JSON:
//
//	{
//	  "base_url": "http://127.0.0.1:5000/api/v1",
//	  "request_timeout": "5s",
//	  "storage_backend": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "breaker_enabled": true
//	}
package config

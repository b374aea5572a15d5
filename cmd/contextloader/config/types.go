// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package config provides configuration types and loading for the
contextloader CLI.

# Configuration File

The configuration is stored at ~/.charactercontext/charactercontext.yaml
and is created automatically on first run with sensible defaults.

# Example

	content_root: /home/alice/.charactercontext/characters
	server:
	  listen_address: ":8084"
	cache:
	  enabled: true
	  ttl: 5m
*/
package config

import (
	"time"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	// DefaultListenAddress is the address the HTTP API binds by default.
	DefaultListenAddress = ":8084"

	// DefaultMaxFileSizeBytes caps a single context file's size.
	DefaultMaxFileSizeBytes int64 = 10 * 1024 * 1024

	// DefaultCacheTTL is how long a cached character context stays valid.
	DefaultCacheTTL = 30 * time.Minute

	// DefaultCacheMaxEntries bounds the in-memory cache's size.
	DefaultCacheMaxEntries = 100

	// DefaultMaxConcurrentLoads bounds in-flight Load calls.
	DefaultMaxConcurrentLoads int64 = 5

	// DefaultLoadTimeout bounds a single Load call end to end.
	DefaultLoadTimeout = 30 * time.Second

	// DefaultCircuitBreakerThreshold is the accumulated failure weight
	// that opens the circuit.
	DefaultCircuitBreakerThreshold = 10.0

	// DefaultCircuitBreakerRecovery is how long the circuit stays open
	// before probing again in the half-open state.
	DefaultCircuitBreakerRecovery = 5 * time.Minute
)

// CharacterContextConfig is the root configuration structure for the
// contextloader CLI and server.
//
// # Fields
//
//   - ContentRoot: directory under which every character's subdirectory lives
//   - Server: HTTP API binding and logging configuration
//   - Cache: TTL-cache tuning for successful loads
//   - Concurrency: in-flight load bound and per-load timeout
//   - CircuitBreaker: failure-weight tuning for the load breaker
type CharacterContextConfig struct {
	// Meta contains versioning and audit information.
	Meta ConfigMeta `yaml:"meta"`

	// ContentRoot is the directory under which every character's
	// subdirectory lives.
	ContentRoot string `yaml:"content_root"`

	// MaxFileSizeBytes caps how large a single context file may be.
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes"`

	// Server configures the optional HTTP API.
	Server ServerConfig `yaml:"server"`

	// Cache configures the in-memory TTL cache.
	Cache CacheConfig `yaml:"cache"`

	// Concurrency bounds in-flight loads.
	Concurrency ConcurrencyConfig `yaml:"concurrency"`

	// CircuitBreaker tunes the loader's circuit breaker.
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`

	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the optional HTTP API surface.
type ServerConfig struct {
	// ListenAddress is the address the HTTP API binds, e.g. ":8084".
	ListenAddress string `yaml:"listen_address"`

	// MetricsPath is where Prometheus metrics are exposed.
	MetricsPath string `yaml:"metrics_path"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds how long writing a response may take.
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// CacheConfig configures the TTL cache for successful loads.
type CacheConfig struct {
	// Enabled turns on the TTL cache.
	Enabled bool `yaml:"enabled"`

	// TTL is how long a cached context stays valid.
	TTL time.Duration `yaml:"ttl"`

	// MaxEntries bounds the cache's size.
	MaxEntries int `yaml:"max_entries"`
}

// ConcurrencyConfig bounds in-flight loads.
type ConcurrencyConfig struct {
	// MaxConcurrentLoads bounds how many Load calls may run at once.
	MaxConcurrentLoads int64 `yaml:"max_concurrent_loads"`

	// LoadTimeout bounds how long a single Load call may take end to
	// end, file reads and parsing included.
	LoadTimeout time.Duration `yaml:"load_timeout"`
}

// CircuitBreakerConfig tunes the loader's circuit breaker.
type CircuitBreakerConfig struct {
	// FailureThreshold is the accumulated failure weight that opens
	// the circuit. Full failures count 1.0, partial loads count 0.5.
	FailureThreshold float64 `yaml:"failure_threshold"`

	// OpenTimeout is how long the circuit stays open before probing
	// again in the half-open state. A single success while half-open
	// closes the circuit.
	OpenTimeout time.Duration `yaml:"open_timeout"`
}

// LoggingConfig configures structured log output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// LogDir enables file logging alongside stderr, when set.
	LogDir string `yaml:"log_dir,omitempty"`

	// JSON switches stderr output to JSON.
	JSON bool `yaml:"json"`
}

// ConfigMeta tracks when and how the configuration was created or
// modified.
type ConfigMeta struct {
	// Version is the configuration schema version.
	Version string `yaml:"version"`

	// CreatedAt is the Unix millisecond timestamp when the config was
	// first created.
	CreatedAt int64 `yaml:"created_at"`

	// ModifiedAt is the Unix millisecond timestamp when the config
	// was last modified.
	ModifiedAt int64 `yaml:"modified_at"`

	// ModifiedBy identifies who or what modified the config.
	ModifiedBy string `yaml:"modified_by"`
}

// CurrentConfigVersion is the current configuration schema version.
const CurrentConfigVersion = "1.0.0"

func newConfigMeta() ConfigMeta {
	now := time.Now().UnixMilli()
	return ConfigMeta{
		Version:    CurrentConfigVersion,
		CreatedAt:  now,
		ModifiedAt: now,
		ModifiedBy: "contextloader-cli",
	}
}

// DefaultConfig returns a CharacterContextConfig with sensible
// defaults, used when no configuration file exists on first run.
func DefaultConfig() CharacterContextConfig {
	return CharacterContextConfig{
		Meta:             newConfigMeta(),
		ContentRoot:      defaultContentRoot(),
		MaxFileSizeBytes: DefaultMaxFileSizeBytes,
		Server: ServerConfig{
			ListenAddress: DefaultListenAddress,
			MetricsPath:   "/metrics",
			ReadTimeout:   10 * time.Second,
			WriteTimeout:  30 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        DefaultCacheTTL,
			MaxEntries: DefaultCacheMaxEntries,
		},
		Concurrency: ConcurrencyConfig{
			MaxConcurrentLoads: DefaultMaxConcurrentLoads,
			LoadTimeout:        DefaultLoadTimeout,
		},
		CircuitBreaker: CircuitBreakerConfig{
			FailureThreshold: DefaultCircuitBreakerThreshold,
			OpenTimeout:      DefaultCircuitBreakerRecovery,
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

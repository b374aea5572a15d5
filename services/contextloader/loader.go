// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package contextloader

import (
	"context"
	"log/slog"
	"time"
)

// Config configures a Service.
type Config struct {
	// ContentRoot is the directory under which every character's
	// subdirectory lives.
	ContentRoot string

	// MaxFileSizeBytes caps how large a single context file may be.
	// Default: 10 MiB.
	MaxFileSizeBytes int64

	// EnableCaching turns on the TTL cache for successful loads.
	// DefaultConfig sets it to true.
	EnableCaching bool
	// CacheTTL is how long a cached context stays valid. Default: 30m.
	CacheTTL time.Duration
	// CacheMaxEntries bounds the cache's size. Default: 100.
	CacheMaxEntries int

	// MaxConcurrentLoads bounds how many Load calls may run at once.
	// Default: 5.
	MaxConcurrentLoads int64

	// LoadTimeout bounds how long a single Load call may take end to
	// end, file reads and parsing included. Default: 30s.
	LoadTimeout time.Duration

	// CircuitBreaker tunes the loader's circuit breaker. Zero value
	// applies the package defaults.
	CircuitBreaker CircuitBreakerConfig

	// Logger receives structured diagnostic output. Defaults to
	// slog.Default() if nil.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the same defaults the original
// service applied.
func DefaultConfig(contentRoot string) Config {
	return Config{
		ContentRoot:        contentRoot,
		MaxFileSizeBytes:   defaultMaxFileSizeBytes,
		EnableCaching:      true,
		CacheTTL:           30 * time.Minute,
		CacheMaxEntries:    100,
		MaxConcurrentLoads: 5,
		LoadTimeout:        30 * time.Second,
		CircuitBreaker:     defaultCircuitBreakerConfig(),
	}
}

// Service loads, parses, validates, and caches per-character context
// bundles. See the package doc comment for the overall shape.
type Service struct {
	contentRoot      string
	maxFileSizeBytes int64
	enableCaching    bool
	loadTimeout      time.Duration
	logger           *slog.Logger

	cache    *contextCache
	gate     *concurrencyGate
	breaker  *circuitBreaker
	counters loadCounters
}

// NewService constructs a Service from cfg, applying defaults for any
// zero-valued size, cache, concurrency, timeout, circuit breaker or
// logger field. ContentRoot and EnableCaching are used as given, so a
// zero Config runs with caching off.
func NewService(cfg Config) *Service {
	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = defaultMaxFileSizeBytes
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Minute
	}
	if cfg.CacheMaxEntries <= 0 {
		cfg.CacheMaxEntries = 100
	}
	if cfg.MaxConcurrentLoads <= 0 {
		cfg.MaxConcurrentLoads = 5
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	svc := &Service{
		contentRoot:      cfg.ContentRoot,
		maxFileSizeBytes: cfg.MaxFileSizeBytes,
		enableCaching:    cfg.EnableCaching,
		loadTimeout:      cfg.LoadTimeout,
		logger:           logger,
		gate:             newConcurrencyGate(cfg.MaxConcurrentLoads),
		breaker:          newCircuitBreaker(cfg.CircuitBreaker),
	}
	if cfg.EnableCaching {
		svc.cache = newContextCache(cacheConfig{
			TTL:    cfg.CacheTTL,
			MaxLen: cfg.CacheMaxEntries,
			Logger: logger,
		})
	}

	logger.Info("contextloader service initialized",
		slog.String("content_root", cfg.ContentRoot),
		slog.Int64("max_file_size_bytes", cfg.MaxFileSizeBytes),
		slog.Bool("caching", cfg.EnableCaching),
		slog.Int64("max_concurrent_loads", cfg.MaxConcurrentLoads),
	)

	return svc
}

// Load resolves identifier to a character directory, loads and parses
// whichever of the four recognized files exist, and returns the
// consolidated CharacterContext.
//
// # Description
//
// Load checks the circuit breaker first, then the cache, then resolves
// and checks the character directory, then acquires a concurrency slot
// before reading any file. A cache hit skips
// every later stage, including the concurrency gate. The four files
// load and parse in parallel under loadTimeout; per-file failures never
// abort the group, but an empty result (every file failed) surfaces as
// ErrNoContextLoaded wrapped in a *LoaderError with
// ErrorKindLoadFailed. The circuit breaker's fractional partial-failure
// accounting is recorded here, not inside the individual parsers.
//
// # Thread Safety
//
// Safe to call concurrently; each call is independent.
func (s *Service) Load(ctx context.Context, rawIdentifier string) (*CharacterContext, *LoaderError) {
	start := time.Now()
	s.counters.totalAttempts.Add(1)

	if allowed, retryAfter := s.breaker.allow(); !allowed {
		recordLoad("service_unavailable", time.Since(start).Seconds())
		return nil, serviceUnavailable(retryAfter)
	}

	identifier, sanErr := sanitizeIdentifier(rawIdentifier)
	if sanErr != nil {
		recordLoad("invalid_argument", time.Since(start).Seconds())
		return nil, sanErr
	}

	if s.enableCaching {
		if cached, hit := s.cache.Get(identifier); hit {
			recordCacheResult(true)
			recordLoad("cache_hit", time.Since(start).Seconds())
			return cached, nil
		}
		recordCacheResult(false)
	}

	dir, pathErr := resolveCharacterDirectory(s.contentRoot, identifier)
	if pathErr != nil {
		if pathErr.Kind == ErrorKindSecurityViolation {
			s.counters.securityViolations.Add(1)
		} else {
			s.counters.failedLoads.Add(1)
			s.breaker.recordFailure()
		}
		recordLoad(string(pathErr.Kind), time.Since(start).Seconds())
		return nil, pathErr
	}

	release, acqErr := s.gate.acquire(ctx, identifier)
	if acqErr != nil {
		recordLoad("timeout", time.Since(start).Seconds())
		return nil, wrapError(ErrorKindTimeout, "timed out waiting for a concurrency slot", acqErr)
	}
	defer release()
	recordActiveLoads(s.gate.activeCount())
	defer recordActiveLoads(s.gate.activeCount())

	loadCtx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	results := loadAllFiles(loadCtx, dir, identifier, s.maxFileSizeBytes)
	for _, r := range results {
		recordFileLoad(r.kind, r.info.LoadedSuccessfully)
	}

	if loadCtx.Err() != nil {
		s.breaker.recordFailure()
		s.counters.failedLoads.Add(1)
		recordLoad("timeout", time.Since(start).Seconds())
		return nil, wrapError(ErrorKindTimeout, "load timed out", loadCtx.Err())
	}

	character := assembleCharacterContext(identifier, results)

	if integrityErr := validateIntegrity(character); integrityErr != nil {
		s.breaker.recordFailure()
		s.counters.failedLoads.Add(1)
		recordLoad("validation_failed", time.Since(start).Seconds())
		return nil, wrapError(ErrorKindValidationFailed, integrityErr.Error(), integrityErr)
	}

	switch {
	case !character.LoadSuccess:
		s.counters.failedLoads.Add(1)
		s.breaker.recordFailure()
		recordCircuitState(s.breaker.State())
		recordLoad("failed", time.Since(start).Seconds())
		return nil, wrapError(ErrorKindLoadFailed, ErrNoContextLoaded.Error(), ErrNoContextLoaded)
	case character.PartialLoad:
		s.counters.partialLoads.Add(1)
		s.breaker.recordPartialFailure()
	default:
		s.counters.successfulLoads.Add(1)
		s.breaker.recordSuccess()
	}
	recordCircuitState(s.breaker.State())

	if s.enableCaching && character.LoadSuccess {
		s.cache.Put(identifier, character)
	}

	outcome := "success"
	if character.PartialLoad {
		outcome = "partial"
	}
	recordLoad(outcome, time.Since(start).Seconds())

	s.logger.Info("character context loaded",
		slog.String("character_id", identifier),
		slog.Bool("load_success", character.LoadSuccess),
		slog.Bool("partial_load", character.PartialLoad),
		slog.Duration("duration", time.Since(start)),
	)

	return character, nil
}

// ClearCache discards every cached context.
func (s *Service) ClearCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
	s.logger.Info("context cache cleared")
}

// GetStatistics returns a comprehensive monitoring snapshot of the
// service's load counters, cache, concurrency gate, and circuit
// breaker.
func (s *Service) GetStatistics() ServiceStatistics {
	loadStats := s.counters.snapshot()

	var caching CachingStats
	if s.cache != nil {
		cacheStats := s.cache.Statistics()
		caching = CachingStats{
			Enabled:         true,
			CacheSize:       cacheStats.Size,
			CacheTTLMinutes: s.cache.ttl.Minutes(),
			CacheHits:       cacheStats.Hits,
			CacheMisses:     cacheStats.Misses,
			HitRate:         cacheStats.HitRate,
		}
	}

	active := s.gate.activeCount()

	return ServiceStatistics{
		LoadStatistics:     loadStats,
		ContentRoot:        s.contentRoot,
		MaxFileSizeMB:      float64(s.maxFileSizeBytes) / (1024 * 1024),
		SupportedFileKinds: orderedFileKinds[:],
		Caching:            caching,
		Concurrency: ConcurrencyStats{
			MaxConcurrentLoads: int(s.gate.maxLen),
			ActiveLoads:        active,
			ActiveLoadIDs:      s.gate.activeIdentifiers(),
		},
		CircuitBreaker: CircuitBreakerStats{
			State:         s.breaker.State().String(),
			FailureWeight: s.breaker.FailureWeight(),
			Threshold:     s.breaker.config.FailureThreshold,
		},
		ServiceStatus: serviceHealthStatus(
			s.breaker.State(),
			loadStats.SecurityViolations,
			active,
			int(s.gate.maxLen),
		),
	}
}

// ValidateDirectory inspects a character's directory for the presence
// of its four expected files without reading or parsing any of them.
func (s *Service) ValidateDirectory(rawIdentifier string) DirectoryProbeResult {
	identifier, sanErr := sanitizeIdentifier(rawIdentifier)
	if sanErr != nil {
		return DirectoryProbeResult{CharacterID: rawIdentifier, Error: sanErr.Error()}
	}
	return probeDirectory(s.contentRoot, identifier)
}

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

import "sync/atomic"

// loadCounters accumulates lifetime load outcomes. All fields use
// atomic operations so Service.Load never needs to hold a lock just to
// bump a counter.
type loadCounters struct {
	totalAttempts      atomic.Int64
	successfulLoads    atomic.Int64
	partialLoads       atomic.Int64
	failedLoads        atomic.Int64
	securityViolations atomic.Int64
}

// LoadStatistics is a point-in-time snapshot of loadCounters.
type LoadStatistics struct {
	TotalAttempts      int64 `json:"total_attempts"`
	SuccessfulLoads    int64 `json:"successful_loads"`
	PartialLoads       int64 `json:"partial_loads"`
	FailedLoads        int64 `json:"failed_loads"`
	SecurityViolations int64 `json:"security_violations"`
}

func (c *loadCounters) snapshot() LoadStatistics {
	return LoadStatistics{
		TotalAttempts:      c.totalAttempts.Load(),
		SuccessfulLoads:    c.successfulLoads.Load(),
		PartialLoads:       c.partialLoads.Load(),
		FailedLoads:        c.failedLoads.Load(),
		SecurityViolations: c.securityViolations.Load(),
	}
}

// ServiceStatistics is the comprehensive monitoring snapshot returned
// by Service.GetStatistics.
type ServiceStatistics struct {
	LoadStatistics     LoadStatistics  `json:"load_statistics"`
	ContentRoot        string          `json:"content_root"`
	MaxFileSizeMB      float64         `json:"max_file_size_mb"`
	SupportedFileKinds []FileKind      `json:"supported_file_kinds"`
	Caching            CachingStats    `json:"caching"`
	Concurrency        ConcurrencyStats `json:"concurrency"`
	CircuitBreaker     CircuitBreakerStats `json:"circuit_breaker"`
	ServiceStatus      string          `json:"service_status"`
}

// CachingStats summarizes cache configuration and performance.
type CachingStats struct {
	Enabled         bool    `json:"enabled"`
	CacheSize       int     `json:"cache_size"`
	CacheTTLMinutes float64 `json:"cache_ttl_minutes"`
	CacheHits       int64   `json:"cache_hits"`
	CacheMisses     int64   `json:"cache_misses"`
	HitRate         float64 `json:"hit_rate"`
}

// ConcurrencyStats summarizes the concurrency gate's configuration and
// current occupancy.
type ConcurrencyStats struct {
	MaxConcurrentLoads int      `json:"max_concurrent_loads"`
	ActiveLoads        int      `json:"active_loads"`
	ActiveLoadIDs      []string `json:"active_load_ids"`
}

// CircuitBreakerStats summarizes the circuit breaker's current state.
type CircuitBreakerStats struct {
	State         string  `json:"state"`
	FailureWeight float64 `json:"failure_weight"`
	Threshold     float64 `json:"threshold"`
}

// serviceHealthStatus derives a single health label from the circuit
// breaker state, accumulated security violations, and current
// concurrency occupancy, in that priority order.
//
// # Description
//
// "degraded" (circuit open) and "recovering" (half-open) always win
// over load-based signals, since an open circuit means loads are being
// actively rejected regardless of how busy the service looks.
// "security_alert" fires once more than ten security violations have
// been recorded over the service's lifetime - that threshold is a
// coarse signal meant for humans scanning logs, not an automated
// cutoff. "high_load" means every concurrency slot is currently
// occupied.
func serviceHealthStatus(state CircuitState, securityViolations int64, activeLoads, maxConcurrent int) string {
	switch state {
	case CircuitOpen:
		return "degraded"
	case CircuitHalfOpen:
		return "recovering"
	}
	if securityViolations > 10 {
		return "security_alert"
	}
	if maxConcurrent > 0 && activeLoads >= maxConcurrent {
		return "high_load"
	}
	return "healthy"
}

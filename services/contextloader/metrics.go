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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// loadLatency measures Service.Load duration.
	// Labels: outcome (success, partial, cache_hit, failed,
	// invalid_argument, security_violation, directory_not_found,
	// load_failed, timeout, validation_failed, service_unavailable).
	loadLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "charactercontext",
		Subsystem: "loader",
		Name:      "load_latency_seconds",
		Help:      "Character context load latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"outcome"})

	// loadsTotal counts Service.Load calls by outcome.
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "charactercontext",
		Subsystem: "loader",
		Name:      "loads_total",
		Help:      "Total character context loads by outcome",
	}, []string{"outcome"})

	// fileLoadsTotal counts individual file loads by kind and outcome.
	fileLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "charactercontext",
		Subsystem: "loader",
		Name:      "file_loads_total",
		Help:      "Total individual context file loads by kind and outcome",
	}, []string{"kind", "outcome"})

	// cacheHitsTotal and cacheMissesTotal mirror the internal cache's
	// atomic counters as externally scrapeable metrics.
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "charactercontext",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total character context cache hits",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "charactercontext",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total character context cache misses",
	})

	// circuitStateGauge reports the current circuit breaker state
	// (0=closed, 1=open, 2=half-open), matching CircuitState's iota order.
	circuitStateGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "charactercontext",
		Subsystem: "loader",
		Name:      "circuit_state",
		Help:      "Current circuit breaker state (0=closed, 1=open, 2=half_open)",
	})

	// activeLoadsGauge reports the number of loads currently holding a
	// concurrency slot.
	activeLoadsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "charactercontext",
		Subsystem: "loader",
		Name:      "active_loads",
		Help:      "Number of character context loads currently in flight",
	})
)

// recordLoad records the latency and outcome of one Service.Load call.
func recordLoad(outcome string, durationSec float64) {
	loadLatency.WithLabelValues(outcome).Observe(durationSec)
	loadsTotal.WithLabelValues(outcome).Inc()
}

// recordFileLoad records the outcome of one file-kind load within a
// Service.Load call.
func recordFileLoad(kind FileKind, success bool) {
	outcome := "success"
	if !success {
		outcome = "failed"
	}
	fileLoadsTotal.WithLabelValues(string(kind), outcome).Inc()
}

// recordCacheResult records a single cache lookup's outcome.
func recordCacheResult(hit bool) {
	if hit {
		cacheHitsTotal.Inc()
		return
	}
	cacheMissesTotal.Inc()
}

// recordCircuitState publishes the circuit breaker's current state.
func recordCircuitState(state CircuitState) {
	circuitStateGauge.Set(float64(state))
}

// recordActiveLoads publishes the current in-flight load count.
func recordActiveLoads(count int) {
	activeLoadsGauge.Set(float64(count))
}

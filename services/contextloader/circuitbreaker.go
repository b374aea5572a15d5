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
	"fmt"
	"sync"
	"time"
)

// CircuitState is the state of the loader's circuit breaker.
//
// # States
//
//   - Closed: normal operation, loads flow through
//   - Open: tripped, loads are rejected immediately
//   - HalfOpen: a recovery probe is in flight
//
// # State Diagram
//
//	   ┌─────────────────────────────────────┐
//	   │                                     │
//	   ▼                                     │
//	CLOSED ──[failure threshold]──► OPEN ───┘
//	   ▲                              │
//	   │                              │
//	   └───[success]◄── HALF_OPEN ◄──┘
//	                    [recovery timeout]
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "CLOSED"
	case CircuitOpen:
		return "OPEN"
	case CircuitHalfOpen:
		return "HALF_OPEN"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", s)
	}
}

// partialFailureWeight is how much a partial load (some but not all of
// the four files loaded) counts toward the failure threshold, relative
// to a full failure's weight of 1.0.
const partialFailureWeight = 0.5

// CircuitBreakerConfig configures the loader's circuit breaker.
type CircuitBreakerConfig struct {
	// FailureThreshold is the accumulated failure weight that trips the
	// circuit from closed to open. Default: 10.0.
	FailureThreshold float64
	// OpenTimeout is how long the circuit stays open before allowing a
	// half-open probe. Default: 5 minutes.
	OpenTimeout time.Duration
}

func defaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 10.0,
		OpenTimeout:      5 * time.Minute,
	}
}

// circuitBreaker guards Service.Load against a run of failing loads.
//
// # Description
//
// Unlike a typical network-call breaker, a failed load here is rarely
// binary: a partial load (some but not all files parsed) degrades the
// result without representing total unavailability, so it only
// contributes partialFailureWeight toward the open threshold instead
// of a full failure unit. A clean success while closed does nothing
// structural; the accumulated failure weight persists across
// interspersed successes. A clean success while half-open graduates
// the breaker to closed immediately and resets the weight to zero.
//
// # Thread Safety
//
// Safe for concurrent use.
type circuitBreaker struct {
	config CircuitBreakerConfig

	mu          sync.RWMutex
	state       CircuitState
	failWeight  float64
	lastFailure time.Time
}

func newCircuitBreaker(config CircuitBreakerConfig) *circuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 10.0
	}
	if config.OpenTimeout <= 0 {
		config.OpenTimeout = 5 * time.Minute
	}
	return &circuitBreaker{config: config, state: CircuitClosed}
}

// allow reports whether a load may proceed, transitioning the breaker
// from open to half-open if the recovery timeout has elapsed.
func (cb *circuitBreaker) allow() (bool, time.Duration) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitClosed:
		return true, 0
	case CircuitOpen:
		elapsed := time.Since(cb.lastFailure)
		if elapsed > cb.config.OpenTimeout {
			cb.state = CircuitHalfOpen
			return true, 0
		}
		return false, cb.config.OpenTimeout - elapsed
	case CircuitHalfOpen:
		return true, 0
	default:
		return false, cb.config.OpenTimeout
	}
}

// recordSuccess records a fully successful load (all four files
// loaded, no integrity failure). A success while half-open closes the
// circuit immediately and resets the accumulated failure weight.
func (cb *circuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitHalfOpen {
		cb.failWeight = 0
		cb.state = CircuitClosed
	}
}

// recordPartialFailure records a partial load, contributing
// partialFailureWeight toward the open threshold.
func (cb *circuitBreaker) recordPartialFailure() {
	cb.recordWeightedFailure(partialFailureWeight)
}

// recordFailure records a full failure (no files loaded, or a
// cross-cutting error), contributing one full failure unit.
func (cb *circuitBreaker) recordFailure() {
	cb.recordWeightedFailure(1.0)
}

func (cb *circuitBreaker) recordWeightedFailure(weight float64) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failWeight += weight
	cb.lastFailure = time.Now()

	switch cb.state {
	case CircuitClosed:
		if cb.failWeight >= cb.config.FailureThreshold {
			cb.state = CircuitOpen
		}
	case CircuitHalfOpen:
		cb.state = CircuitOpen
	}
}

// State returns the current circuit state.
func (cb *circuitBreaker) State() CircuitState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// FailureWeight returns the current accumulated failure weight.
func (cb *circuitBreaker) FailureWeight() float64 {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failWeight
}

// Reset forces the circuit back to closed, clearing all counters.
func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.state = CircuitClosed
	cb.failWeight = 0
}

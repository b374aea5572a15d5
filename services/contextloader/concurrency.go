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
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// concurrencyGate bounds the number of in-flight Load calls and tracks
// which ones are currently running.
//
// # Description
//
// acquire blocks until a slot is free or ctx is cancelled, registers an
// opaque load token in the active-load registry, and returns a release
// function that removes it. The active-load
// registry exists for GetStatistics/health reporting: it is not itself
// what enforces the bound, the semaphore is.
//
// # Thread Safety
//
// Safe for concurrent use.
type concurrencyGate struct {
	sem    *semaphore.Weighted
	maxLen int64

	mu     sync.Mutex
	active map[string]string // load token -> character identifier
}

func newConcurrencyGate(maxConcurrent int64) *concurrencyGate {
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	return &concurrencyGate{
		sem:    semaphore.NewWeighted(maxConcurrent),
		maxLen: maxConcurrent,
		active: make(map[string]string),
	}
}

// acquire blocks until a concurrency slot is available for identifier.
// The returned release func must be called exactly once to free the
// slot and remove the load from the active registry.
func (g *concurrencyGate) acquire(ctx context.Context, identifier string) (release func(), err error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	token := uuid.NewString()
	g.mu.Lock()
	g.active[token] = identifier
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.active, token)
		g.mu.Unlock()
		g.sem.Release(1)
	}, nil
}

// activeCount returns the number of loads currently holding a slot.
func (g *concurrencyGate) activeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.active)
}

// activeIdentifiers returns the character identifiers of every load
// currently in flight, in no particular order.
func (g *concurrencyGate) activeIdentifiers() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.active))
	for _, id := range g.active {
		out = append(out, id)
	}
	return out
}

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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextCache_MissOnEmptyCache(t *testing.T) {
	cache := newContextCache(cacheConfig{TTL: time.Minute, MaxLen: 10})

	_, hit := cache.Get("test_character")

	assert.False(t, hit)
	assert.Equal(t, int64(1), cache.Statistics().Misses)
}

func TestContextCache_PutThenGetHits(t *testing.T) {
	cache := newContextCache(cacheConfig{TTL: time.Minute, MaxLen: 10})
	value := &CharacterContext{CharacterID: "test_character", LoadSuccess: true}

	cache.Put("test_character", value)
	got, hit := cache.Get("test_character")

	require.True(t, hit)
	assert.Equal(t, "test_character", got.CharacterID)
	assert.Equal(t, int64(1), cache.Statistics().Hits)
}

func TestContextCache_GetReturnsIndependentCopy(t *testing.T) {
	cache := newContextCache(cacheConfig{TTL: time.Minute, MaxLen: 10})
	original := &CharacterContext{
		CharacterID:        "test_character",
		ValidationWarnings: []string{"original warning"},
	}

	cache.Put("test_character", original)
	original.ValidationWarnings[0] = "mutated after put"

	got, hit := cache.Get("test_character")
	require.True(t, hit)
	assert.Equal(t, "original warning", got.ValidationWarnings[0])

	got.ValidationWarnings[0] = "mutated after get"
	again, hit := cache.Get("test_character")
	require.True(t, hit)
	assert.Equal(t, "original warning", again.ValidationWarnings[0])
}

func TestContextCache_ExpiresAfterTTL(t *testing.T) {
	cache := newContextCache(cacheConfig{TTL: 10 * time.Millisecond, MaxLen: 10})
	cache.Put("test_character", &CharacterContext{CharacterID: "test_character"})

	time.Sleep(25 * time.Millisecond)

	_, hit := cache.Get("test_character")
	assert.False(t, hit)
	assert.Equal(t, 0, cache.Size())
}

func TestContextCache_EvictsOldestWhenOverCapacity(t *testing.T) {
	cache := newContextCache(cacheConfig{TTL: time.Minute, MaxLen: 2})

	cache.Put("first", &CharacterContext{CharacterID: "first"})
	time.Sleep(2 * time.Millisecond)
	cache.Put("second", &CharacterContext{CharacterID: "second"})
	time.Sleep(2 * time.Millisecond)
	cache.Put("third", &CharacterContext{CharacterID: "third"})

	assert.Equal(t, 2, cache.Size())
	_, hit := cache.Get("first")
	assert.False(t, hit)
	_, hit = cache.Get("third")
	assert.True(t, hit)
}

func TestContextCache_Clear(t *testing.T) {
	cache := newContextCache(cacheConfig{TTL: time.Minute, MaxLen: 10})
	cache.Put("test_character", &CharacterContext{CharacterID: "test_character"})

	cache.Clear()

	assert.Equal(t, 0, cache.Size())
	_, hit := cache.Get("test_character")
	assert.False(t, hit)
}

func TestContextCache_ConcurrentAccess(t *testing.T) {
	cache := newContextCache(cacheConfig{TTL: time.Minute, MaxLen: 50})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := "character"
			cache.Put(id, &CharacterContext{CharacterID: id})
			cache.Get(id)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Size(), 50)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemory_RejectsEmptyDocument(t *testing.T) {
	_, err := parseMemory("   \n  ")

	require.Error(t, err)
}

func TestParseMemory_ExtractsRelationship(t *testing.T) {
	content := "**Dorin Marsh** has been a steady presence, trust stands at 82, relationship: mentor and confidant."

	ctx, err := parseMemory(content)

	require.NoError(t, err)
	require.Len(t, ctx.Relationships, 1)
	rel := ctx.Relationships[0]
	assert.Equal(t, "Dorin Marsh", rel.CharacterName)
	assert.Equal(t, 82, rel.TrustLevel.Score)
	assert.Equal(t, "High", rel.TrustLevel.Category)
	assert.Equal(t, RelationshipTypeProfessionalNetwork, rel.RelationshipType)
}

func TestParseMemory_ExtractsFormativeEvent(t *testing.T) {
	content := "Age 12: She lost her first mentor in the collapse of the northern outpost."

	ctx, err := parseMemory(content)

	require.NoError(t, err)
	require.Len(t, ctx.FormativeEvents, 1)
	event := ctx.FormativeEvents[0]
	assert.Equal(t, 12, event.Age)
	assert.Equal(t, MemoryTypeFoundationalLearning, event.MemoryType)
	assert.Equal(t, "Event at age 12", event.EventName)
}

func TestParseMemory_SkipsEventsOverMaxAge(t *testing.T) {
	content := "Age 150: This should never be extracted because it exceeds the allowed age range."

	ctx, err := parseMemory(content)

	require.NoError(t, err)
	assert.Empty(t, ctx.FormativeEvents)
}

func TestParseMemory_SkipsShortDescriptions(t *testing.T) {
	content := "Age 10: short."

	ctx, err := parseMemory(content)

	require.NoError(t, err)
	assert.Empty(t, ctx.FormativeEvents)
}

func TestParseMemory_SucceedsWithNoExtractableContent(t *testing.T) {
	content := "This document has prose but no bolded names or age markers at all."

	ctx, err := parseMemory(content)

	require.NoError(t, err)
	assert.Empty(t, ctx.Relationships)
	assert.Empty(t, ctx.FormativeEvents)
}

func TestParseMemory_FormativeEventsSortedByAge(t *testing.T) {
	content := "Age 45: Founded her own trading company after years of apprenticeship.\n" +
		"Age 8: Watched her village rebuild after the great fire swept through.\n" +
		"Age 23: Took command of her first expedition into the frontier territories."

	ctx, err := parseMemory(content)

	require.NoError(t, err)
	require.Len(t, ctx.FormativeEvents, 3)
	for i := 1; i < len(ctx.FormativeEvents); i++ {
		assert.LessOrEqual(t, ctx.FormativeEvents[i-1].Age, ctx.FormativeEvents[i].Age)
	}
	assert.Equal(t, 8, ctx.FormativeEvents[0].Age)
	assert.Equal(t, 45, ctx.FormativeEvents[2].Age)
}

func TestParseMemory_BehavioralTriggersAlwaysEmpty(t *testing.T) {
	content := "**Dorin Marsh** mentioned trust around 60, relationship: business contact."

	ctx, err := parseMemory(content)

	require.NoError(t, err)
	assert.Empty(t, ctx.BehavioralTriggers)
}

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

func TestParseStats_RejectsEmptyDocument(t *testing.T) {
	_, err := parseStats("")

	require.Error(t, err)
}

func TestParseStats_RejectsMalformedYAML(t *testing.T) {
	_, err := parseStats("character: [unterminated")

	require.Error(t, err)
}

func TestParseStats_ExtractsIdentityFields(t *testing.T) {
	content := `
character:
  name: Test Character
  age: 41
  origin: Frontier Outpost
  faction: Independent Traders
  rank: Senior Agent
  specialization: Logistics
`

	ctx, err := parseStats(content)

	require.NoError(t, err)
	assert.Equal(t, "Test Character", ctx.Name)
	assert.Equal(t, 41, ctx.Age)
	assert.Equal(t, "Frontier Outpost", ctx.Origin)
	assert.Equal(t, "Independent Traders", ctx.Faction)
	assert.Equal(t, "Senior Agent", ctx.Rank)
	assert.Equal(t, "Logistics", ctx.Specialization)
}

func TestParseStats_DefaultsWhenCharacterBlockMissing(t *testing.T) {
	content := `
combat_stats:
  melee: 5
`

	ctx, err := parseStats(content)

	require.NoError(t, err)
	assert.Equal(t, "Unknown", ctx.Name)
	assert.Equal(t, "Independent", ctx.Faction)
	assert.Equal(t, "General", ctx.Specialization)
}

func TestParseStats_CombatStatsInRangeAccepted(t *testing.T) {
	content := `
combat_stats:
  melee: 7
  ranged: 0
  tactics: 10
`

	ctx, err := parseStats(content)

	require.NoError(t, err)
	assert.Equal(t, 7, ctx.CombatStats["melee"])
	assert.Equal(t, 0, ctx.CombatStats["ranged"])
	assert.Equal(t, 10, ctx.CombatStats["tactics"])
}

func TestParseStats_CombatStatsOutOfRangeRejected(t *testing.T) {
	content := `
combat_stats:
  melee: 11
`

	_, err := parseStats(content)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "combat_stats")
}

func TestParseStats_CombatStatsNonIntegerRejected(t *testing.T) {
	content := `
combat_stats:
  melee: "strong"
`

	_, err := parseStats(content)

	require.Error(t, err)
}

func TestParseStats_RelationshipsMapEntry(t *testing.T) {
	content := `
relationships:
  allies:
    - name: Dorin Marsh
      trust_level: 75
      relationship_type: mentor
`

	ctx, err := parseStats(content)

	require.NoError(t, err)
	require.Len(t, ctx.Relationships["allies"], 1)
	entry := ctx.Relationships["allies"][0]
	assert.Equal(t, "Dorin Marsh", entry.Name)
	assert.Equal(t, 75, entry.TrustLevel)
	assert.Equal(t, "mentor", entry.RelationshipType)
}

func TestParseStats_RelationshipsBareStringEntry(t *testing.T) {
	content := `
relationships:
  rivals:
    - "Unnamed Competitor"
`

	ctx, err := parseStats(content)

	require.NoError(t, err)
	require.Len(t, ctx.Relationships["rivals"], 1)
	entry := ctx.Relationships["rivals"][0]
	assert.Equal(t, "Unnamed Competitor", entry.Name)
	assert.Equal(t, 50, entry.TrustLevel)
	assert.Equal(t, "rivals", entry.RelationshipType)
}

func TestParseStats_UnrecognizedTopLevelKeysPreservedAsAdditionalData(t *testing.T) {
	content := `
character:
  name: Test Character
custom_field: some value
`

	ctx, err := parseStats(content)

	require.NoError(t, err)
	assert.Equal(t, "some value", ctx.AdditionalData["custom_field"])
}

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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectives_RejectsEmptyDocument(t *testing.T) {
	_, err := parseObjectives("")

	require.Error(t, err)
}

func TestParseObjectives_RejectsDocumentWithNoObjectives(t *testing.T) {
	content := "# Objectives\n\nNothing bold-emphasised appears here at all."

	_, err := parseObjectives(content)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no objectives found")
}

func TestParseObjectives_ExtractsCoreTier(t *testing.T) {
	content := "## Core Life Objectives\n\n**Protect the outpost** Ensure the northern settlement survives the winter.\n\n## Strategic Objectives\n\nNone listed."

	ctx, err := parseObjectives(content)

	require.NoError(t, err)
	require.Len(t, ctx.CoreObjectives, 1)
	obj := ctx.CoreObjectives[0]
	assert.Equal(t, "Protect the outpost", obj.Name)
	assert.Equal(t, ObjectiveTierCore, obj.Tier)
	assert.Equal(t, ObjectiveStatusActive, obj.Status)
	assert.Equal(t, defaultObjectivePriority, obj.Priority)
	assert.Equal(t, "Ongoing", obj.Timeline)
}

func TestParseObjectives_ExtractsAllThreeTiers(t *testing.T) {
	content := strings.Join([]string{
		"## Core Life Objectives",
		"**Secure the homestead** Keep the family land safe across generations.",
		"## Strategic Objectives",
		"**Expand trade routes** Open new contracts with the coastal guilds.",
		"## Tactical Objectives",
		"**Resupply the garrison** Deliver winter provisions before the first snow.",
	}, "\n\n")

	ctx, err := parseObjectives(content)

	require.NoError(t, err)
	assert.Len(t, ctx.CoreObjectives, 1)
	assert.Len(t, ctx.StrategicObjectives, 1)
	assert.Len(t, ctx.TacticalObjectives, 1)
}

func TestParseObjectives_DescriptionTruncatedTo500(t *testing.T) {
	longDescription := strings.Repeat("x", 600)
	content := "## Core Life Objectives\n\n**Long goal** " + longDescription

	ctx, err := parseObjectives(content)

	require.NoError(t, err)
	require.Len(t, ctx.CoreObjectives, 1)
	assert.LessOrEqual(t, len(ctx.CoreObjectives[0].Description), maxObjectiveDescriptionLength)
}

func TestParseObjectives_ResourceAllocationNeverPopulatedByParser(t *testing.T) {
	content := "## Core Life Objectives\n\n**Protect the outpost** Ensure the settlement survives."

	ctx, err := parseObjectives(content)

	require.NoError(t, err)
	assert.Empty(t, ctx.ResourceAllocation.TimeEnergyPercentages)
}

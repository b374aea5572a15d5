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
	"regexp"
	"strings"
)

// tierMarker associates a tier heading keyword with the tier enum value
// of the objectives found under it.
type tierMarker struct {
	heading string
	tier    ObjectiveTier
}

var objectiveTierMarkers = []tierMarker{
	{"Core Life", ObjectiveTierCore},
	{"Strategic", ObjectiveTierStrategic},
	{"Tactical", ObjectiveTierTactical},
}

var objectiveNamePattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

const maxObjectiveDescriptionLength = 500
const defaultObjectivePriority = 5

// parseObjectives extracts an ObjectivesContext from a character's
// `_objectives.md` prose.
//
// # Description
//
// For each of the three tiers, it builds a tier-scoped section pattern
// ("Core Life" ... up to the next heading) and extracts one Objective
// per bolded name found inside that section, with the text up to the
// next bolded name (or the section end) as its description. Every
// extracted objective defaults to ObjectiveStatusActive, priority 5,
// and timeline "Ongoing" since the prose format does not reliably
// encode those fields. Descriptions are truncated to 500 characters.
func parseObjectives(content string) (*ObjectivesContext, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("objectives parsing error: no data")
	}

	ctx := &ObjectivesContext{}
	total := 0

	for _, marker := range objectiveTierMarkers {
		sectionPattern := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(marker.heading) + `[^#]*`)

		var objectives []Objective
		for _, sectionText := range sectionPattern.FindAllString(content, -1) {
			nameLocs := objectiveNamePattern.FindAllStringSubmatchIndex(sectionText, -1)
			for i, loc := range nameLocs {
				end := len(sectionText)
				if i+1 < len(nameLocs) {
					end = nameLocs[i+1][0]
				}
				name := strings.TrimSpace(sectionText[loc[2]:loc[3]])
				description := strings.TrimSpace(sectionText[loc[1]:end])
				if len(description) > maxObjectiveDescriptionLength {
					description = description[:maxObjectiveDescriptionLength]
				}

				objectives = append(objectives, Objective{
					Name:        name,
					Description: description,
					Tier:        marker.tier,
					Status:      ObjectiveStatusActive,
					Priority:    defaultObjectivePriority,
					Timeline:    "Ongoing",
				})
			}
		}

		total += len(objectives)
		switch marker.tier {
		case ObjectiveTierCore:
			ctx.CoreObjectives = objectives
		case ObjectiveTierStrategic:
			ctx.StrategicObjectives = objectives
		case ObjectiveTierTactical:
			ctx.TacticalObjectives = objectives
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("objectives parsing error: no objectives found")
	}

	return ctx, nil
}

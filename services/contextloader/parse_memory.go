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
	"sort"
	"strconv"
	"strings"
)

var (
	// relationshipPattern pulls a bolded character name, a trailing
	// trust score, and a relationship descriptor out of free-form
	// memory prose: "**Dorin Marsh** ... trust ... 72 ... relationship: mentor".
	relationshipPattern = regexp.MustCompile(`(?is)\*\*([^*]+)\*\*[^*]*trust.*?(\d+).*?relationship.*?[:\-]?\s*([^*\n]+)`)

	// ageEventPattern pulls an "Age N" marker and the sentence that
	// follows it as a formative event.
	ageEventPattern = regexp.MustCompile(`(?i)[Aa]ge\s*(\d+)[^.]*?[:\-]?\s*([^.]+\.)`)
)

const maxAgeForFormativeEvent = 120
const minFormativeDescriptionLength = 10

// parseMemory extracts a MemoryContext from a character's `_memory.md`
// prose.
//
// # Description
//
// This is a deliberately shallow extraction pass over free-form
// narrative text, not a markdown AST parser: it looks for two textual
// shapes (a bolded name near a trust score and relationship label; an
// "Age N" marker followed by a sentence) and turns each match into a
// structured entry. Relationship entries default to
// RelationshipTypeProfessionalNetwork and formative events default to
// MemoryTypeFoundationalLearning, since the prose rarely states a type
// explicitly. BehavioralTriggers is always empty; nothing in the
// source material currently expresses the conditions/response shape
// needed to populate it.
func parseMemory(content string) (*MemoryContext, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("memory parsing error: no data")
	}

	var relationships []RelationshipMemory
	for _, m := range relationshipPattern.FindAllStringSubmatch(content, -1) {
		trustScore, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		relationships = append(relationships, RelationshipMemory{
			CharacterName:     strings.TrimSpace(m[1]),
			RelationshipType:  RelationshipTypeProfessionalNetwork,
			MemoryFoundation:  "Documented in memory context",
			TrustLevel:        NewTrustLevel(trustScore),
			EmotionalDynamics: strings.TrimSpace(m[3]),
		})
	}

	var formativeEvents []FormativeEvent
	for _, m := range ageEventPattern.FindAllStringSubmatch(content, -1) {
		age, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		description := strings.TrimSpace(m[2])
		if age > maxAgeForFormativeEvent || len(description) <= minFormativeDescriptionLength {
			continue
		}
		formativeEvents = append(formativeEvents, FormativeEvent{
			Age:               age,
			EventName:         fmt.Sprintf("Event at age %d", age),
			Description:       description,
			MemoryType:        MemoryTypeFoundationalLearning,
			EmotionalImpact:   "Documented in memory context",
			DecisionInfluence: "Influences current behavior patterns",
		})
	}

	sort.SliceStable(formativeEvents, func(i, j int) bool {
		return formativeEvents[i].Age < formativeEvents[j].Age
	})

	return &MemoryContext{
		FormativeEvents: formativeEvents,
		Relationships:   relationships,
	}, nil
}

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

	"gopkg.in/yaml.v3"
)

var recognizedStatsKeys = map[string]bool{
	"character":            true,
	"combat_stats":         true,
	"psychological_profile": true,
	"equipment":            true,
	"relationships":        true,
	"locations":            true,
	"objectives":           true,
}

// parseStats parses a `_stats.yaml` document into a StatsContext.
//
// # Description
//
// Top-level key "character" yields the identity fields, with defaults
// applied for anything missing, including the whole block; a document
// with no usable content at all fails with "no data". combat_stats and
// psychological_profile values must each fall in 0..10 or the whole
// sub-context fails with a range error. Unknown top-level keys are
// preserved verbatim under AdditionalData.
func parseStats(content string) (*StatsContext, error) {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("stats parsing error: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("stats parsing error: no data")
	}

	character, _ := raw["character"].(map[string]any)

	stats := &StatsContext{
		Name:           stringOr(character, "name", "Unknown"),
		Age:            intOr(character, "age", 0),
		Origin:         stringOr(character, "origin", "Unknown"),
		Faction:        stringOr(character, "faction", "Independent"),
		Rank:           stringOr(character, "rank", ""),
		Specialization: stringOr(character, "specialization", "General"),
		Equipment:      map[string]any{},
		Locations:      map[string]any{},
		Objectives:     map[string]string{},
		AdditionalData: map[string]any{},
	}

	combat, err := parseBoundedIntMap(raw["combat_stats"], "combat_stats")
	if err != nil {
		return nil, err
	}
	stats.CombatStats = combat

	psych, err := parseBoundedIntMap(raw["psychological_profile"], "psychological_profile")
	if err != nil {
		return nil, err
	}
	stats.PsychologicalProfile = psych

	if equipment, ok := raw["equipment"].(map[string]any); ok {
		stats.Equipment = equipment
	}
	if locations, ok := raw["locations"].(map[string]any); ok {
		stats.Locations = locations
	}
	if objectives, ok := raw["objectives"].(map[string]any); ok {
		stats.Objectives = stringMapFromAny(objectives)
	}

	stats.Relationships = parseRelationships(raw["relationships"])

	for k, v := range raw {
		if !recognizedStatsKeys[k] {
			stats.AdditionalData[k] = v
		}
	}

	if stats.Name == "Unknown" && stats.Age == 0 && len(stats.CombatStats) == 0 &&
		len(stats.PsychologicalProfile) == 0 && len(stats.Equipment) == 0 &&
		len(stats.Relationships) == 0 && len(stats.AdditionalData) == 0 && character == nil {
		return nil, fmt.Errorf("stats parsing error: no data")
	}

	return stats, nil
}

// parseBoundedIntMap decodes a combat_stats/psychological_profile map,
// requiring every value to be an integer in 0..10.
func parseBoundedIntMap(v any, field string) (map[string]int, error) {
	out := map[string]int{}
	m, ok := v.(map[string]any)
	if !ok {
		return out, nil
	}
	for k, raw := range m {
		n, ok := toInt(raw)
		if !ok {
			return nil, fmt.Errorf("stats parsing error: %s.%s is not an integer", field, k)
		}
		if n < 0 || n > 10 {
			return nil, fmt.Errorf("stats parsing error: %s %s must be between 0-10, got %d", field, k, n)
		}
		out[k] = n
	}
	return out, nil
}

// parseRelationships decodes the relationships block. Map elements
// become full entries; bare strings become entries named after the
// string with the relation kind as their type; default trust 50.
func parseRelationships(v any) map[string][]RelationshipEntry {
	out := map[string][]RelationshipEntry{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for kind, rawList := range m {
		list, ok := rawList.([]any)
		if !ok {
			continue
		}
		entries := make([]RelationshipEntry, 0, len(list))
		for _, item := range list {
			switch rel := item.(type) {
			case map[string]any:
				entries = append(entries, RelationshipEntry{
					Name:             stringOr(rel, "name", ""),
					TrustLevel:       intOr(rel, "trust_level", 50),
					RelationshipType: stringOr(rel, "relationship_type", "unknown"),
				})
			case string:
				entries = append(entries, RelationshipEntry{
					Name:             rel,
					TrustLevel:       50,
					RelationshipType: kind,
				})
			}
		}
		out[kind] = entries
	}
	return out
}

func stringOr(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func intOr(m map[string]any, key string, fallback int) int {
	if m == nil {
		return fallback
	}
	if n, ok := toInt(m[key]); ok {
		return n
	}
	return fallback
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func stringMapFromAny(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprintf("%v", v)
		}
	}
	return out
}

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
	"strconv"
	"strings"
)

var (
	profileNamePattern   = regexp.MustCompile(`(?i)\*\*Name\*\*:\s*([^\n]+)`)
	profileAgePattern    = regexp.MustCompile(`(?i)\*\*Age\*\*:\s*(\d+)`)
	profileGenderPattern = regexp.MustCompile(`(?i)\*\*Gender\*\*:\s*([^\n]+)`)
	profileRacePattern   = regexp.MustCompile(`(?i)\*\*Race\*\*:\s*([^\n]+)`)
	profileClassPattern  = regexp.MustCompile(`(?i)\*\*Class\*\*:\s*([^\n]+)`)

	profilePhysicalPattern   = regexp.MustCompile(`(?is)Physical Description[^#]*?([^#]+?)(?:#|$)`)
	profileBackgroundPattern = regexp.MustCompile(`(?is)Background[^#]*?([^#]+?)(?:#|$)`)

	// profileDrivePattern matches a numbered bold heading followed by
	// free text, filtered afterward to headings that mention
	// "drive" or "emotional".
	profileDrivePattern = regexp.MustCompile(`\*\*(\d+\..*?)\*\*[^*]*?([^*]+)`)
)

const maxDriveDescriptionLength = 200

// parseProfile extracts a ProfileContext from a character's
// `_profile.md` prose.
//
// # Description
//
// Identity fields (name/age/gender/race/class) are read from
// "**Label**: value" markers; missing fields default to "Unknown" (0
// for age). The Physical Description and Background sections are
// captured as their trailing free text up to the next heading, or
// "Not provided" if absent. Emotional drives are extracted from
// numbered bold headings whose text mentions "drive" or "emotional";
// every other profile list (responses, traits, skills, equipment) is
// left empty, matching what this prose format can reliably express.
func parseProfile(content string) (*ProfileContext, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("profile parsing error: no data")
	}

	ctx := &ProfileContext{
		Name:                   matchOrDefault(profileNamePattern, content, "Unknown"),
		Age:                    matchIntOrDefault(profileAgePattern, content, 0),
		Gender:                 matchOrDefault(profileGenderPattern, content, "Unknown"),
		Race:                   matchOrDefault(profileRacePattern, content, "Unknown"),
		CharacterClass:         matchOrDefault(profileClassPattern, content, "Unknown"),
		PhysicalDescription:    matchOrDefault(profilePhysicalPattern, content, "Not provided"),
		BackgroundSummary:      matchOrDefault(profileBackgroundPattern, content, "Not provided"),
		DistinguishingFeatures: []string{},
		KeyLifePhases:          []string{},
		CoreSkills:             []string{},
		Specializations:        []string{},
		Equipment:              []string{},
		Resources:              []string{},
	}

	for _, m := range profileDrivePattern.FindAllStringSubmatch(content, -1) {
		driveName := strings.TrimSpace(m[1])
		lower := strings.ToLower(driveName)
		if !strings.Contains(lower, "drive") && !strings.Contains(lower, "emotional") {
			continue
		}
		driveDesc := strings.TrimSpace(m[2])
		if len(driveDesc) > maxDriveDescriptionLength {
			driveDesc = driveDesc[:maxDriveDescriptionLength]
		}
		ctx.EmotionalDrives = append(ctx.EmotionalDrives, EmotionalDrive{
			Name:               driveName,
			DominanceLevel:     "Core",
			Foundation:         driveDesc,
			PositiveExpression: "Positive manifestation documented",
			NegativeExpression: "Negative manifestation documented",
		})
	}

	return ctx, nil
}

func matchOrDefault(re *regexp.Regexp, content, fallback string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return fallback
	}
	return strings.TrimSpace(m[1])
}

func matchIntOrDefault(re *regexp.Regexp, content string, fallback int) int {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil {
		return fallback
	}
	return n
}

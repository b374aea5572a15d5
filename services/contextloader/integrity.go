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

import "fmt"

// maxIntegrityWarnings is the number of accumulated warnings a
// CharacterContext can carry before the load is rejected outright.
const maxIntegrityWarnings = 5

// validateIntegrity cross-checks fields shared by more than one
// sub-context and appends a human-readable warning for every
// inconsistency it finds.
//
// # Description
//
// Checks name agreement between the profile and stats sub-contexts,
// then age agreement likewise. Each disagreement appends one warning
// and clears ContextIntegrity; it never blocks the load by itself.
// validateIntegrity returns an error only when the accumulated warning
// count (including any already present on ctx) exceeds
// maxIntegrityWarnings, since that volume of disagreement signals the
// four files most likely describe different characters rather than one
// character recorded inconsistently.
func validateIntegrity(ctx *CharacterContext) error {
	names := map[string]bool{}
	if ctx.ProfileContext != nil && ctx.ProfileContext.Name != "" {
		names[ctx.ProfileContext.Name] = true
	}
	if ctx.StatsContext != nil && ctx.StatsContext.Name != "" {
		names[ctx.StatsContext.Name] = true
	}
	if len(names) > 1 {
		ctx.ValidationWarnings = append(ctx.ValidationWarnings,
			fmt.Sprintf("name inconsistency across sub-contexts: %s", joinKeys(names)))
		ctx.ContextIntegrity = false
	}

	ages := map[int]bool{}
	if ctx.ProfileContext != nil {
		ages[ctx.ProfileContext.Age] = true
	}
	if ctx.StatsContext != nil {
		ages[ctx.StatsContext.Age] = true
	}
	if len(ages) > 1 {
		ctx.ValidationWarnings = append(ctx.ValidationWarnings, "age inconsistency across sub-contexts")
		ctx.ContextIntegrity = false
	}

	if len(ctx.ValidationWarnings) > maxIntegrityWarnings {
		return fmt.Errorf("critical data integrity issues: %d warnings", len(ctx.ValidationWarnings))
	}
	return nil
}

func joinKeys(m map[string]bool) string {
	out := ""
	for k := range m {
		if out != "" {
			out += ", "
		}
		out += k
	}
	return out
}

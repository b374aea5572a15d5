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
	"regexp"
	"strings"
)

// maxIdentifierLength is the longest canonical identifier accepted.
const maxIdentifierLength = 100

var (
	// disallowedCharacters matches anything outside word characters,
	// hyphens, underscores, and whitespace; it is stripped during
	// sanitation rather than rejected outright.
	disallowedCharacters = regexp.MustCompile(`[^\w\-\s]`)

	// whitespaceRun collapses one or more whitespace characters to a
	// single underscore.
	whitespaceRun = regexp.MustCompile(`\s+`)

	// canonicalForm is the grammar a sanitised identifier must match.
	canonicalForm = regexp.MustCompile(`^[a-z0-9_-]{1,100}$`)
)

// sanitizeIdentifier normalizes a raw, user-supplied character
// identifier into its canonical filesystem-safe form.
//
// # Description
//
// Trims outer whitespace, strips any character outside
// [word, hyphen, underscore, whitespace], collapses internal whitespace
// runs to a single underscore, lowercases the result, and rejects it if
// it is empty or exceeds maxIdentifierLength.
//
// # Thread Safety
//
// Pure function; safe for concurrent use.
func sanitizeIdentifier(raw string) (string, *LoaderError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", newError(ErrorKindInvalidArgument, "character identifier must be a non-empty string")
	}

	stripped := disallowedCharacters.ReplaceAllString(trimmed, "")
	if stripped == "" {
		return "", newError(ErrorKindInvalidArgument, "character identifier contains no valid characters")
	}

	collapsed := whitespaceRun.ReplaceAllString(stripped, "_")
	canonical := strings.ToLower(collapsed)

	if len(canonical) > maxIdentifierLength {
		return "", newError(ErrorKindInvalidArgument, "character identifier too long (max 100 chars)")
	}

	return canonical, nil
}

// isCanonicalIdentifier reports whether s already matches the
// canonical identifier grammar [a-z0-9_-]{1,100}.
func isCanonicalIdentifier(s string) bool {
	return canonicalForm.MatchString(s)
}

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

func TestSanitizeIdentifier_TrimsAndLowercases(t *testing.T) {
	got, err := sanitizeIdentifier("  Test Character  ")

	require.Nil(t, err)
	assert.Equal(t, "test_character", got)
}

func TestSanitizeIdentifier_StripsDisallowedCharacters(t *testing.T) {
	got, err := sanitizeIdentifier("test@character!#123")

	require.Nil(t, err)
	assert.Equal(t, "testcharacter123", got)
}

func TestSanitizeIdentifier_CollapsesWhitespaceRuns(t *testing.T) {
	got, err := sanitizeIdentifier("dorin   marsh\tthe\nfirst")

	require.Nil(t, err)
	assert.Equal(t, "dorin_marsh_the_first", got)
}

func TestSanitizeIdentifier_RejectsEmptyInput(t *testing.T) {
	_, err := sanitizeIdentifier("   ")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindInvalidArgument, err.Kind)
}

func TestSanitizeIdentifier_RejectsAllDisallowedCharacters(t *testing.T) {
	_, err := sanitizeIdentifier("@#$%^&*()")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindInvalidArgument, err.Kind)
}

func TestSanitizeIdentifier_RejectsTooLong(t *testing.T) {
	_, err := sanitizeIdentifier(strings.Repeat("a", maxIdentifierLength+1))

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindInvalidArgument, err.Kind)
}

func TestSanitizeIdentifier_AllowsMaxLength(t *testing.T) {
	raw := strings.Repeat("a", maxIdentifierLength)

	got, err := sanitizeIdentifier(raw)

	require.Nil(t, err)
	assert.Len(t, got, maxIdentifierLength)
}

func TestIsCanonicalIdentifier(t *testing.T) {
	assert.True(t, isCanonicalIdentifier("dorin_marsh-2"))
	assert.False(t, isCanonicalIdentifier("Dorin Marsh"))
	assert.False(t, isCanonicalIdentifier(""))
	assert.False(t, isCanonicalIdentifier("../etc/passwd"))
}

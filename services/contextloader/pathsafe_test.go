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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCharacterDirectory_Success(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "dorin_marsh"), 0o755))

	resolved, err := resolveCharacterDirectory(root, "dorin_marsh")

	require.Nil(t, err)
	assert.Equal(t, mustEvalSymlinks(t, filepath.Join(root, "dorin_marsh")), resolved)
}

func TestResolveCharacterDirectory_RejectsPathSeparators(t *testing.T) {
	root := t.TempDir()

	_, err := resolveCharacterDirectory(root, "some/dir")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindSecurityViolation, err.Kind)
}

func TestResolveCharacterDirectory_RejectsDotDot(t *testing.T) {
	root := t.TempDir()

	_, err := resolveCharacterDirectory(root, "foo..bar")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindSecurityViolation, err.Kind)
}

func TestResolveCharacterDirectory_RejectsNonCanonicalIdentifier(t *testing.T) {
	root := t.TempDir()

	_, err := resolveCharacterDirectory(root, "Dorin Marsh")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindSecurityViolation, err.Kind)
}

func TestResolveCharacterDirectory_MissingDirectory(t *testing.T) {
	root := t.TempDir()

	_, err := resolveCharacterDirectory(root, "nonexistent")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindDirectoryNotFound, err.Kind)
}

func TestResolveCharacterDirectory_RejectsFileInsteadOfDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notadir"), []byte("x"), 0o644))

	_, err := resolveCharacterDirectory(root, "notadir")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindDirectoryNotFound, err.Kind)
}

func TestResolveCharacterDirectory_SymlinkEscapeRejected(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(outside, "secret"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret"), filepath.Join(root, "escape_link")))

	_, err := resolveCharacterDirectory(root, "escape_link")

	require.NotNil(t, err)
	assert.Equal(t, ErrorKindSecurityViolation, err.Kind)
}

func mustEvalSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

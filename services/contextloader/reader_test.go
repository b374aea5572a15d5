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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadContextFile_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "character_memory.md")
	require.NoError(t, os.WriteFile(path, []byte("some narrative content"), 0o644))

	content, size, err := readContextFile(context.Background(), path, defaultMaxFileSizeBytes)

	require.NoError(t, err)
	assert.Equal(t, "some narrative content", content)
	assert.Equal(t, int64(len("some narrative content")), size)
}

func TestReadContextFile_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "character_memory.md")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	_, _, err := readContextFile(context.Background(), path, 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestReadContextFile_WhitespaceOnlyIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "character_memory.md")
	require.NoError(t, os.WriteFile(path, []byte("   \n\t  "), 0o644))

	_, _, err := readContextFile(context.Background(), path, defaultMaxFileSizeBytes)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestReadContextFile_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "character_memory.md")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644))

	_, _, err := readContextFile(context.Background(), path, defaultMaxFileSizeBytes)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestReadContextFile_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does_not_exist.md")

	_, _, err := readContextFile(context.Background(), path, defaultMaxFileSizeBytes)

	require.Error(t, err)
}

func TestReadContextFile_RespectsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "character_memory.md")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := readContextFile(ctx, path, defaultMaxFileSizeBytes)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

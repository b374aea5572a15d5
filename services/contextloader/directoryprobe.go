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
)

// ExpectedFileInfo describes one of the four recognized files within a
// probed character directory.
type ExpectedFileInfo struct {
	FileName string `json:"file_name"`
	Exists   bool   `json:"exists"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
}

// DirectoryProbeResult is the outcome of Service.ValidateDirectory: a
// read-only inspection of a character directory's expected contents,
// with no parsing performed.
type DirectoryProbeResult struct {
	CharacterID      string                      `json:"character_id"`
	DirectoryExists  bool                        `json:"directory_exists"`
	DirectoryPath    string                      `json:"directory_path"`
	ExpectedFiles    map[FileKind]ExpectedFileInfo `json:"expected_files"`
	FilesFound       int                         `json:"files_found"`
	TotalExpected    int                         `json:"total_expected"`
	ValidationPassed bool                        `json:"validation_success"`
	Error            string                      `json:"error,omitempty"`
}

// probeDirectory inspects what a character directory contains without
// reading or parsing any file.
//
// # Description
//
// Validation passes as soon as at least one of the four expected files
// exists; a character is allowed to be incomplete, just not entirely
// absent. Any filesystem error while statting an expected file is
// recorded as that file's absence rather than aborting the whole
// probe.
func probeDirectory(root, identifier string) DirectoryProbeResult {
	result := DirectoryProbeResult{
		CharacterID:   identifier,
		ExpectedFiles: make(map[FileKind]ExpectedFileInfo, len(orderedFileKinds)),
		TotalExpected: len(orderedFileKinds),
	}

	dir := filepath.Join(root, identifier)
	result.DirectoryPath = dir

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		result.Error = "character directory does not exist"
		return result
	}
	result.DirectoryExists = true

	for _, kind := range orderedFileKinds {
		fileName := identifier + fileSuffix(kind)
		filePath := filepath.Join(dir, fileName)

		entry := ExpectedFileInfo{FileName: fileName, FilePath: filePath}
		if fi, err := os.Stat(filePath); err == nil {
			entry.Exists = true
			entry.FileSize = fi.Size()
			result.FilesFound++
		}
		result.ExpectedFiles[kind] = entry
	}

	result.ValidationPassed = result.FilesFound > 0
	return result
}

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
	"strings"
)

// resolveCharacterDirectory resolves a canonical identifier under root
// and enforces containment, defense in depth against traversal even
// though sanitizeIdentifier should already make it unreachable.
//
// # Description
//
// Rejects any identifier containing a path separator or "..". Resolves
// root/identifier to an absolute path and requires it to sit inside the
// absolute resolved root. Verifies the resolved path exists and is a
// directory.
func resolveCharacterDirectory(root, identifier string) (string, *LoaderError) {
	if strings.ContainsAny(identifier, `/\`) || strings.Contains(identifier, "..") {
		return "", newError(ErrorKindSecurityViolation, "path traversal detected in character identifier")
	}
	if !isCanonicalIdentifier(identifier) {
		return "", newError(ErrorKindSecurityViolation, "invalid characters in character identifier")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", wrapError(ErrorKindSecurityViolation, "failed to resolve content root", err)
	}
	absRoot, err = filepath.EvalSymlinks(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return "", newError(ErrorKindDirectoryNotFound, "content root does not exist")
		}
		return "", wrapError(ErrorKindSecurityViolation, "failed to resolve content root", err)
	}

	candidate := filepath.Join(absRoot, identifier)

	resolved := candidate
	if evaluated, err := filepath.EvalSymlinks(candidate); err == nil {
		resolved = evaluated
	} else if !os.IsNotExist(err) {
		return "", wrapError(ErrorKindSecurityViolation, "failed to resolve character directory", err)
	}

	rel, err := filepath.Rel(absRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", newError(ErrorKindSecurityViolation, "resolved path escapes content root")
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", newError(ErrorKindDirectoryNotFound, "character directory not found")
		}
		return "", wrapError(ErrorKindLoadFailed, "failed to stat character directory", err)
	}
	if !info.IsDir() {
		return "", newError(ErrorKindDirectoryNotFound, "character path is not a directory")
	}

	return resolved, nil
}

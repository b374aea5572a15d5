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
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// defaultMaxFileSizeBytes is the default per-file size cap (10 MiB).
const defaultMaxFileSizeBytes int64 = 10 * 1024 * 1024

// readContextFile reads path under maxBytes, decoding it as UTF-8 text.
//
// # Description
//
// Fails with "file too large" if the file exceeds maxBytes, "empty
// file" if the decoded text is whitespace-only, and a generic read
// error for anything else (including invalid UTF-8). The context is
// checked for cancellation before the read begins so a deadline that
// has already elapsed does not perform I/O.
func readContextFile(ctx context.Context, path string, maxBytes int64) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("stat failed: %w", err)
	}

	size := info.Size()
	if size > maxBytes {
		return "", size, fmt.Errorf("file too large: %d bytes (max %d)", size, maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", size, fmt.Errorf("read failed: %w", err)
	}

	if !utf8.Valid(data) {
		return "", size, fmt.Errorf("file is not valid UTF-8")
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return "", size, fmt.Errorf("empty file")
	}

	return content, size, nil
}

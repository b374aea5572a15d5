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
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// fileResult is the outcome of loading and parsing a single file kind.
type fileResult struct {
	kind   FileKind
	info   LoadedFileInfo
	memory *MemoryContext
	objectives *ObjectivesContext
	profile *ProfileContext
	stats  *StatsContext
}

// loadAllFiles loads and parses the four recognized files under dir in
// parallel, one goroutine per file kind. A per-file error never aborts
// the group: every kind always yields a LoadedFileInfo, successful or
// not, and the caller decides what "enough" data looks like.
//
// # Description
//
// Files that don't exist are reported with LoadedSuccessfully=false and
// error_message "File not found" rather than treated as a fatal
// condition; every file in a character directory is optional. gCtx is
// derived from ctx so a caller-side timeout cancels any file task still
// in flight, though an in-progress os.ReadFile call is not interrupted
// mid-syscall.
func loadAllFiles(ctx context.Context, dir, identifier string, maxFileSize int64) []fileResult {
	results := make([]fileResult, len(orderedFileKinds))

	g, gCtx := errgroup.WithContext(ctx)

	for i, kind := range orderedFileKinds {
		i, kind := i, kind
		g.Go(func() error {
			results[i] = loadOneFile(gCtx, dir, identifier, kind, maxFileSize)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func loadOneFile(ctx context.Context, dir, identifier string, kind FileKind, maxFileSize int64) fileResult {
	fileName := identifier + fileSuffix(kind)
	path := filepath.Join(dir, fileName)

	info := LoadedFileInfo{
		FileName:      fileName,
		FilePath:      path,
		LoadTimestamp: time.Now().UTC(),
	}

	if _, err := os.Stat(path); err != nil {
		info.ErrorMessage = "File not found"
		return fileResult{kind: kind, info: info}
	}

	content, size, err := readContextFile(ctx, path, maxFileSize)
	info.FileSizeBytes = size
	if err != nil {
		info.ErrorMessage = err.Error()
		return fileResult{kind: kind, info: info}
	}

	result := fileResult{kind: kind}
	switch kind {
	case FileKindMemory:
		mc, perr := parseMemory(content)
		if perr != nil {
			info.ErrorMessage = perr.Error()
			result.info = info
			return result
		}
		result.memory = mc
	case FileKindObjectives:
		oc, perr := parseObjectives(content)
		if perr != nil {
			info.ErrorMessage = perr.Error()
			result.info = info
			return result
		}
		result.objectives = oc
	case FileKindProfile:
		pc, perr := parseProfile(content)
		if perr != nil {
			info.ErrorMessage = perr.Error()
			result.info = info
			return result
		}
		result.profile = pc
	case FileKindStats:
		sc, perr := parseStats(content)
		if perr != nil {
			info.ErrorMessage = perr.Error()
			result.info = info
			return result
		}
		result.stats = sc
	}

	info.LoadedSuccessfully = true
	result.info = info
	return result
}

// assembleCharacterContext consolidates four independent file results
// into one CharacterContext, deriving LoadSuccess and PartialLoad from
// how many of the four sub-contexts parsed.
//
// # Description
//
// character_name resolves to the profile name, then the stats name,
// then the identifier itself - the same fallback order PrimaryName
// exposes publicly. Zero sub-contexts loaded means LoadSuccess is
// false; one to three means PartialLoad is true; all four means a
// clean, fully successful load.
func assembleCharacterContext(identifier string, results []fileResult) *CharacterContext {
	ctx := &CharacterContext{
		CharacterID: identifier,
		LoadTimestamp: time.Now().UTC(),
		LoadSuccess: true,
	}

	loadedCount := 0
	for _, r := range results {
		ctx.LoadedFiles = append(ctx.LoadedFiles, r.info)
		switch r.kind {
		case FileKindMemory:
			if r.memory != nil {
				ctx.MemoryContext = r.memory
				loadedCount++
			}
		case FileKindObjectives:
			if r.objectives != nil {
				ctx.ObjectivesContext = r.objectives
				loadedCount++
			}
		case FileKindProfile:
			if r.profile != nil {
				ctx.ProfileContext = r.profile
				loadedCount++
			}
		case FileKindStats:
			if r.stats != nil {
				ctx.StatsContext = r.stats
				loadedCount++
			}
		}
	}

	ctx.CharacterName = identifier
	if ctx.ProfileContext != nil && ctx.ProfileContext.Name != "" {
		ctx.CharacterName = ctx.ProfileContext.Name
	} else if ctx.StatsContext != nil && ctx.StatsContext.Name != "" {
		ctx.CharacterName = ctx.StatsContext.Name
	}

	ctx.ContextIntegrity = true

	switch {
	case loadedCount == 0:
		ctx.LoadSuccess = false
		ctx.ValidationWarnings = append(ctx.ValidationWarnings, "no context data was successfully loaded")
	case loadedCount < len(orderedFileKinds):
		ctx.PartialLoad = true
	}

	return ctx
}

// ErrNoContextLoaded is returned by Load when every file in a character
// directory failed to load or parse.
var ErrNoContextLoaded = fmt.Errorf("no context data was successfully loaded")

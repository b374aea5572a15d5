// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	cfgpkg "github.com/AleutianAI/charactercontext/cmd/contextloader/config"
	"github.com/AleutianAI/charactercontext/pkg/logging"
	"github.com/AleutianAI/charactercontext/services/contextloader"
	"github.com/mattn/go-isatty"
)

// buildService constructs a contextloader.Service from the loaded
// CLI configuration singleton.
func buildService() *contextloader.Service {
	cfg := cfgpkg.Global
	logger := logging.New(logging.Config{
		Level:   parseLevel(cfg.Logging.Level),
		JSON:    cfg.Logging.JSON,
		LogDir:  cfg.Logging.LogDir,
		Service: "contextloader-cli",
	})

	return contextloader.NewService(contextloader.Config{
		ContentRoot:        cfg.ContentRoot,
		MaxFileSizeBytes:   cfg.MaxFileSizeBytes,
		EnableCaching:      cfg.Cache.Enabled,
		CacheTTL:           cfg.Cache.TTL,
		CacheMaxEntries:    cfg.Cache.MaxEntries,
		MaxConcurrentLoads: cfg.Concurrency.MaxConcurrentLoads,
		LoadTimeout:        cfg.Concurrency.LoadTimeout,
		CircuitBreaker: contextloader.CircuitBreakerConfig{
			FailureThreshold: cfg.CircuitBreaker.FailureThreshold,
			OpenTimeout:      cfg.CircuitBreaker.OpenTimeout,
		},
		Logger: logger.Slog(),
	})
}

func parseLevel(level string) logging.Level {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// isInteractive reports whether stdout is attached to a terminal,
// following the teacher's go-isatty convention for choosing between a
// plain-text human summary and indented JSON.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// printResult writes data as indented JSON when jsonOutput is set or
// stdout isn't a terminal, and otherwise hands it to humanize for a
// friendlier rendering.
func printResult(data interface{}, humanize func()) {
	if jsonOutput || !isInteractive() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
		}
		return
	}
	humanize()
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command contextloader loads, validates, and serves character context
// bundles assembled from per-character stats, memory, objectives, and
// profile files.
//
// Usage:
//
//	contextloader load <character-id>
//	contextloader validate <character-id>
//	contextloader stats
//	contextloader cache clear
//	contextloader serve
package main

import (
	"log"

	cfgpkg "github.com/AleutianAI/charactercontext/cmd/contextloader/config"
)

func main() {
	if err := cfgpkg.Load(); err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}

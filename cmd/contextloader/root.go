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
	"github.com/spf13/cobra"
)

// jsonOutput, when set via --json, switches the output of the load,
// validate, stats and cache clear subcommands from a human-readable
// summary to indented JSON.
var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "contextloader",
	Short: "Loads, validates, and serves per-character context bundles",
	Long: `contextloader loads a character's memory, objectives, profile, and
stats files from disk, parses each into a typed sub-context, and
assembles a consolidated context bundle with partial-success
semantics, caching, and circuit breaking.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"print machine-readable JSON instead of a human-readable summary")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(serveCmd)
}

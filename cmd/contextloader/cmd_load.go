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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <character-id>",
	Short: "Load, parse, and consolidate a character's context bundle",
	Long: `Resolves the given character identifier under the configured
content root, reads and parses whichever of the four recognized
files exist (memory, objectives, profile, stats), and prints the
consolidated, validated bundle.

A load that finds fewer than four files still succeeds as a partial
load; the loaded_files list in the output names which ones were
missing or failed to parse.`,
	Args: cobra.ExactArgs(1),
	Run:  runLoadCommand,
}

func runLoadCommand(cmd *cobra.Command, args []string) {
	svc := buildService()
	character, loadErr := svc.Load(context.Background(), args[0])
	if loadErr != nil {
		printResult(map[string]string{"error": loadErr.Error(), "kind": string(loadErr.Kind)}, func() {
			fmt.Fprintf(os.Stderr, "load failed: %s (%s)\n", loadErr.Error(), loadErr.Kind)
		})
		os.Exit(1)
	}

	printResult(character, func() {
		status := "full"
		if character.PartialLoad {
			status = "partial"
		}
		fmt.Printf("%s (%s load)\n", character.CharacterName, status)
		fmt.Printf("  character_id:      %s\n", character.CharacterID)
		fmt.Printf("  context_integrity: %v\n", character.ContextIntegrity)
		for _, f := range character.LoadedFiles {
			mark := "ok"
			if !f.LoadedSuccessfully {
				mark = "missing/failed"
			}
			fmt.Printf("  %-12s %s", f.FileName, mark)
			if f.ErrorMessage != "" {
				fmt.Printf(" (%s)", f.ErrorMessage)
			}
			fmt.Println()
		}
		for _, w := range character.ValidationWarnings {
			fmt.Printf("  warning: %s\n", w)
		}
	})
}

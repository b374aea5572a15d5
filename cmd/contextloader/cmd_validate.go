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
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <character-id>",
	Short: "Probe a character's directory without reading or parsing any file",
	Long: `Sanitises the identifier, checks that the character's directory
exists under the content root, and reports which of the four
expected files are present and their size. No file content is read.`,
	Args: cobra.ExactArgs(1),
	Run:  runValidateCommand,
}

func runValidateCommand(cmd *cobra.Command, args []string) {
	svc := buildService()
	result := svc.ValidateDirectory(args[0])

	printResult(result, func() {
		fmt.Printf("%s: directory_exists=%v validation_success=%v (%d/%d files)\n",
			result.CharacterID, result.DirectoryExists, result.ValidationPassed,
			result.FilesFound, result.TotalExpected)
		if result.Error != "" {
			fmt.Printf("  error: %s\n", result.Error)
			return
		}
		for kind, info := range result.ExpectedFiles {
			mark := "missing"
			if info.Exists {
				mark = fmt.Sprintf("%d bytes", info.FileSize)
			}
			fmt.Printf("  %-12s %-12s %s\n", kind, info.FileName, mark)
		}
	})
}

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

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or manage the loader's TTL cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard every cached character context",
	Run:   runCacheClearCommand,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClearCommand(cmd *cobra.Command, args []string) {
	svc := buildService()
	svc.ClearCache()
	printResult(map[string]bool{"cleared": true}, func() {
		fmt.Println("cache cleared")
	})
}

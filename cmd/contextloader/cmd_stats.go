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

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the loader's statistics and health snapshot",
	Long: `Reports lifetime load counters, cache hit rate, circuit breaker
state, and active-load occupancy, plus a single derived health label
(healthy, high_load, recovering, degraded, security_alert).

Each invocation constructs a fresh Service, so the counters reported
here only reflect loads made through this process - use the "serve"
command's /v1/characters/statistics endpoint to observe a long-running
server's cumulative statistics.`,
	Run: runStatsCommand,
}

func runStatsCommand(cmd *cobra.Command, args []string) {
	svc := buildService()
	snapshot := svc.GetStatistics()

	printResult(snapshot, func() {
		fmt.Printf("status: %s\n", snapshot.ServiceStatus)
		fmt.Printf("content_root: %s  max_file_size_mb: %.1f\n", snapshot.ContentRoot, snapshot.MaxFileSizeMB)
		fmt.Printf("loads: total=%d successful=%d partial=%d failed=%d security_violations=%d\n",
			snapshot.LoadStatistics.TotalAttempts,
			snapshot.LoadStatistics.SuccessfulLoads,
			snapshot.LoadStatistics.PartialLoads,
			snapshot.LoadStatistics.FailedLoads,
			snapshot.LoadStatistics.SecurityViolations,
		)
		fmt.Printf("cache: enabled=%v size=%d hit_rate=%.2f\n",
			snapshot.Caching.Enabled, snapshot.Caching.CacheSize, snapshot.Caching.HitRate)
		fmt.Printf("circuit_breaker: state=%s failure_weight=%.1f threshold=%.1f\n",
			snapshot.CircuitBreaker.State, snapshot.CircuitBreaker.FailureWeight, snapshot.CircuitBreaker.Threshold)
		fmt.Printf("concurrency: active=%d max=%d\n",
			snapshot.Concurrency.ActiveLoads, snapshot.Concurrency.MaxConcurrentLoads)
	})
}

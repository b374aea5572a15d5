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
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfgpkg "github.com/AleutianAI/charactercontext/cmd/contextloader/config"
	"github.com/AleutianAI/charactercontext/services/contextloader/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveDebug bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the context loader over HTTP",
	Long: `Starts a gin HTTP server exposing the four public operations
(load, validate, statistics, cache clear) under /v1/characters, plus a
Prometheus /metrics endpoint, and blocks until SIGINT/SIGTERM.`,
	Run: runServeCommand,
}

func init() {
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "run gin in debug mode with request logging")
}

func runServeCommand(cmd *cobra.Command, args []string) {
	cfg := cfgpkg.Global

	if serveDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := buildService()
	handlers := httpapi.NewHandlers(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	if serveDebug {
		router.Use(gin.Logger())
	}

	v1 := router.Group("/v1")
	httpapi.RegisterRoutes(v1, handlers)
	router.GET(cfg.Server.MetricsPath, gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Server.ListenAddress,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("contextloader serving on %s (content_root=%s)\n", cfg.Server.ListenAddress, cfg.ContentRoot)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nshutting down contextloader server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "graceful shutdown failed: %v\n", err)
	}
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package httpapi

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every character-context endpoint under rg.
//
// Endpoints:
//
//	POST /v1/characters/load - Load, parse, and validate a character's context
//	POST /v1/characters/validate - Probe a character directory without parsing
//	GET  /v1/characters/statistics - Load/cache/circuit-breaker snapshot
//	POST /v1/characters/cache/clear - Discard every cached context
//	GET  /v1/characters/health - Service health check
//
// Example:
//
//	handlers := httpapi.NewHandlers(svc)
//	v1 := router.Group("/v1")
//	httpapi.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	characters := rg.Group("/characters")
	{
		characters.POST("/load", handlers.HandleLoad)
		characters.POST("/validate", handlers.HandleValidate)
		characters.GET("/statistics", handlers.HandleStatistics)
		characters.POST("/cache/clear", handlers.HandleClearCache)
		characters.GET("/health", handlers.HandleHealth)
	}
}

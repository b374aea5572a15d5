// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package httpapi exposes contextloader.Service over HTTP using gin.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/AleutianAI/charactercontext/services/contextloader"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handlers contains the HTTP handlers for the character context loader.
type Handlers struct {
	svc *contextloader.Service
}

// NewHandlers creates handlers for the given service.
func NewHandlers(svc *contextloader.Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleLoad handles POST /v1/characters/load.
//
// Loads, parses, validates, and returns a character's consolidated
// context bundle. Partial loads are still returned with 200 OK; the
// response body's PartialLoad field distinguishes them.
func (h *Handlers) HandleLoad(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleLoad")

	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}
	if err := req.Validate(); err != nil {
		logger.Warn("request failed validation", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	character, loadErr := h.svc.Load(c.Request.Context(), req.CharacterID)
	if loadErr != nil {
		statusCode, code := statusForErrorKind(loadErr.Kind)
		logger.Warn("load failed", "error", loadErr.Error(), "kind", loadErr.Kind)
		resp := ErrorResponse{Error: loadErr.Error(), Code: code}
		if loadErr.Kind == contextloader.ErrorKindServiceUnavailable {
			resp.RetryAfterSeconds = loadErr.RetryAfter.Seconds()
			c.Header("Retry-After", loadErr.RetryAfter.String())
		}
		c.JSON(statusCode, resp)
		return
	}

	c.JSON(http.StatusOK, LoadResponse{Context: character})
}

// HandleValidate handles POST /v1/characters/validate.
//
// Probes a character's directory for the presence of its expected
// files without reading or parsing any of them.
func (h *Handlers) HandleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	result := h.svc.ValidateDirectory(req.CharacterID)
	c.JSON(http.StatusOK, result)
}

// HandleStatistics handles GET /v1/characters/statistics.
//
// Returns the service's load counters, cache, concurrency, and
// circuit breaker snapshot.
func (h *Handlers) HandleStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetStatistics())
}

// HandleClearCache handles POST /v1/characters/cache/clear.
func (h *Handlers) HandleClearCache(c *gin.Context) {
	h.svc.ClearCache()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// HandleHealth handles GET /v1/characters/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.svc.GetStatistics().ServiceStatus})
}

// statusForErrorKind maps a contextloader.ErrorKind to an HTTP status
// and a stable machine-readable error code.
func statusForErrorKind(kind contextloader.ErrorKind) (int, string) {
	switch kind {
	case contextloader.ErrorKindInvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case contextloader.ErrorKindSecurityViolation:
		return http.StatusBadRequest, "SECURITY_VIOLATION"
	case contextloader.ErrorKindDirectoryNotFound:
		return http.StatusNotFound, "DIRECTORY_NOT_FOUND"
	case contextloader.ErrorKindServiceUnavailable:
		return http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"
	case contextloader.ErrorKindTimeout:
		return http.StatusGatewayTimeout, "TIMEOUT"
	case contextloader.ErrorKindValidationFailed:
		return http.StatusUnprocessableEntity, "VALIDATION_FAILED"
	default:
		return http.StatusInternalServerError, "LOAD_FAILED"
	}
}

// getOrCreateRequestID gets or creates a request ID.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package httpapi

import (
	"github.com/AleutianAI/charactercontext/services/contextloader"
	"github.com/go-playground/validator/v10"
)

// requestValidate is the validator instance for httpapi request bodies.
var requestValidate = validator.New()

// LoadRequest is the request body for POST /v1/characters/load.
type LoadRequest struct {
	// CharacterID identifies which character's files to load. Required,
	// and capped at 200 characters of raw input so obviously-oversized
	// input is rejected before it ever reaches the service; the
	// sanitiser then applies its own 100-character limit to the
	// canonical form.
	CharacterID string `json:"character_id" binding:"required" validate:"required,max=200"`
}

// Validate runs go-playground/validator struct tags over r. Call after
// ShouldBindJSON to catch constraints gin's binding tags don't express.
func (r *LoadRequest) Validate() error {
	return requestValidate.Struct(r)
}

// LoadResponse is the response for POST /v1/characters/load.
type LoadResponse struct {
	Context *contextloader.CharacterContext `json:"context"`
}

// ValidateRequest is the request body for POST /v1/characters/validate.
type ValidateRequest struct {
	// CharacterID identifies which character's directory to probe. Required.
	CharacterID string `json:"character_id" binding:"required" validate:"required,max=200"`
}

// Validate runs go-playground/validator struct tags over r.
func (r *ValidateRequest) Validate() error {
	return requestValidate.Struct(r)
}

// ErrorResponse is the standard error body for failed requests.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the machine-readable error code.
	Code string `json:"code,omitempty"`

	// RetryAfterSeconds is set when Code is SERVICE_UNAVAILABLE and the
	// circuit breaker reports when it will next accept a probe.
	RetryAfterSeconds float64 `json:"retry_after_seconds,omitempty"`
}

// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package caching

import (
	"strings"
	"time"
)

// CacheConfig contains configuration options for creating cached content.
type CacheConfig struct {
	// DisplayName is the user-provided display name for the cached content.
	// When empty, a generated "docproc-" name is used.
	DisplayName string `json:"display_name,omitempty"`

	// SystemInstruction is an optional system instruction stored alongside
	// the cached content.
	SystemInstruction string `json:"system_instruction,omitempty"`

	// TTL is the time-to-live for the cached content. The cache expires
	// after this duration. A zero TTL leaves the server default in place.
	TTL time.Duration `json:"ttl,omitempty"`
}

// Model families that support context caching.
//
// See https://ai.google.dev/gemini-api/docs/caching.
var supportedModelPrefixes = []string{
	"gemini-1.5-",
	"gemini-2.0-",
	"gemini-2.5-",
}

// IsSupportedModel reports whether modelName belongs to a model family that
// supports context caching.
func IsSupportedModel(modelName string) bool {
	for _, prefix := range supportedModelPrefixes {
		if strings.HasPrefix(modelName, prefix) {
			return true
		}
	}
	return false
}

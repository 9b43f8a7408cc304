// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package caching provides context caching on top of the Gemini cached-content API.
//
// Context caching stores uploaded document content server-side so that models
// can reuse it across multiple generation calls within a time-to-live window,
// instead of re-tokenizing the same large document on every request. Cache
// storage, expiry, and eviction are all owned by the remote service; this
// package only orchestrates the cache lifecycle.
//
// # Usage
//
//	svc, err := caching.NewService(client)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cache, err := svc.CreateCache(ctx, "gemini-2.0-flash",
//		[]*genai.Content{genai.NewContentFromParts(
//			[]*genai.Part{genai.NewPartFromURI(file.URI, file.MIMEType)},
//			genai.RoleUser,
//		)},
//		&caching.CacheConfig{
//			SystemInstruction: "You are processing documents efficiently.",
//			TTL:               2 * time.Hour,
//		},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	text, err := svc.GenerateWithCache(ctx, "gemini-2.0-flash", cache.Name,
//		"Summarize the attached document.")
//
// # Supported Models
//
// Only specific model families support context caching. IsSupportedModel
// gates CreateCache; passing an unsupported model is an error.
//
// # Thread Safety
//
// All service operations are safe for concurrent use across multiple goroutines.
package caching

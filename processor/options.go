// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package processor

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-a2a/docproc-go/caching"
	"github.com/go-a2a/docproc-go/files"
)

// Option is a functional option for configuring a [Processor].
type Option func(*Processor)

// WithModel sets the model used for generation and caching.
func WithModel(model string) Option {
	return func(p *Processor) {
		p.model = model
	}
}

// WithPrompt sets the prompt sent alongside uploaded documents.
func WithPrompt(prompt string) Option {
	return func(p *Processor) {
		p.prompt = prompt
	}
}

// WithSystemInstruction sets the system instruction stored in created caches.
func WithSystemInstruction(instruction string) Option {
	return func(p *Processor) {
		p.systemInstruction = instruction
	}
}

// WithLogger sets a custom logger for the processor and the services it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithHTTPClient sets the HTTP client used to fetch documents from URLs.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Processor) {
		if hc != nil {
			p.hc = hc
		}
	}
}

// WithRetryPolicy sets the retry policy applied to upload and generate calls.
// A zero policy disables retries.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(p *Processor) {
		p.retry = policy
	}
}

// WithConcurrency bounds the number of files processed in parallel by
// ProcessFolder. Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n < 1 {
			n = 1
		}
		p.concurrency = n
	}
}

// WithFileService replaces the File API service. Primarily for tests.
func WithFileService(svc files.Service) Option {
	return func(p *Processor) {
		p.files = svc
	}
}

// WithCacheService replaces the caching service. Primarily for tests.
func WithCacheService(svc caching.Service) Option {
	return func(p *Processor) {
		p.caches = svc
	}
}

// WithGenerator replaces the content generator. Primarily for tests.
func WithGenerator(g Generator) Option {
	return func(p *Processor) {
		p.models = g
	}
}

// ProcessOptions adjusts how a single process operation runs.
type ProcessOptions struct {
	// UseCache creates a server-side cache for the uploaded content and
	// generates from the cache instead of passing the handles directly.
	UseCache bool `json:"use_cache,omitempty"`

	// CacheTTL sets the cache time-to-live when UseCache is set. Zero
	// leaves the server default in place.
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`

	// MIMEType overrides the inferred MIME type of the uploaded content.
	MIMEType string `json:"mime_type,omitempty"`
}

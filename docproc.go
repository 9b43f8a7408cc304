// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package docproc is a Go convenience library for processing documents with the Google Gemini API.
//
// The library uploads local files, raw bytes, or URLs to the Gemini File API,
// optionally creates server-side content caches so large documents are not
// re-sent on every request, and requests AI-generated transcriptions or
// summaries. All durable state (uploaded files, cache entries, TTLs) lives on
// the remote service; this module is the orchestration layer on top of
// [google.golang.org/genai].
//
// The main entry point is [github.com/go-a2a/docproc-go/processor.Processor].
// Lower-level access to the File API and the cached-content API is provided by
// [github.com/go-a2a/docproc-go/files] and [github.com/go-a2a/docproc-go/caching].
package docproc

// Version is the version of the docproc module.
var Version = "v0.1.0"

// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package processor orchestrates document processing with the Gemini API.
//
// The processor ties the File API ([github.com/go-a2a/docproc-go/files]) and
// context caching ([github.com/go-a2a/docproc-go/caching]) together: it
// uploads local files, raw bytes, or URL-fetched documents, decides between
// passing the resulting file handles straight to the model and creating a
// server-side cache first, issues the generate call, and returns the
// generated text (or writes it to disk in folder mode).
//
// # Usage
//
//	p, err := processor.New(ctx, apiKey,
//		processor.WithModel("gemini-2.0-flash"),
//		processor.WithPrompt("Summarize this document in detail."),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	text, err := p.ProcessFile(ctx, "report.pdf", &processor.ProcessOptions{
//		UseCache: true,
//		CacheTTL: 2 * time.Hour,
//	})
//
// Folder mode writes one output file per input:
//
//	results, err := p.ProcessFolder(ctx, "./scans", &processor.FolderOptions{
//		OutputDir: "./out",
//		OutputExt: "md",
//	})
//
// # Cache-or-upload Decision
//
// With [ProcessOptions.UseCache] unset, uploaded file handles are passed
// directly in the generate request. With it set, the handles are stored in a
// server-side cache (with the configured system instruction and optional TTL)
// and generation runs against the cache name, so repeated prompts over the
// same document avoid re-tokenization.
//
// # Retries
//
// Upload and generate calls retry on rate limits (HTTP 429) and server-side
// errors under the configured [RetryPolicy] with exponential backoff. All
// other API errors surface immediately.
//
// # Error Handling
//
// Operations return errors rather than swallowing them; in folder mode
// per-file failures are recorded in [FolderResult.Err] without aborting the
// rest of the batch.
package processor

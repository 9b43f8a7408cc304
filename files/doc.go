// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package files wraps the Gemini File API for uploading, listing, retrieving,
// and deleting remotely stored content.
//
// Uploaded files are held server-side and referenced by an opaque handle
// ([*genai.File]) in subsequent generation or caching calls, so large
// documents are sent over the wire once. Files expire automatically on the
// server; the ~20GB size limit is likewise enforced remotely.
//
// # Usage
//
//	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	svc, err := files.NewService(client)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	file, err := svc.UploadPath(ctx, "report.pdf", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Large uploads may be processed asynchronously.
//	file, err = svc.WaitActive(ctx, file.Name)
//
// # Thread Safety
//
// All service operations are safe for concurrent use across multiple goroutines.
package files

// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command docproc processes documents with the Google Gemini API: it uploads
// local files, folders, or URLs, optionally caches their content server-side,
// and writes AI-generated transcriptions or summaries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "docproc:", err)
		os.Exit(1)
	}
}

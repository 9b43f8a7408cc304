// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package mimeutil maps file extensions onto the MIME types accepted by the
// Gemini File API.
package mimeutil

import (
	"path/filepath"
	"strings"
)

// DefaultMIMEType is returned for extensions not present in the table.
const DefaultMIMEType = "application/octet-stream"

// mimeTypes holds the document and image types the File API accepts.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".html": "text/html",
	".htm":  "text/html",
	".csv":  "text/csv",
	".json": "application/json",
	".xml":  "text/xml",
	".rtf":  "text/rtf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// TypeOf returns the MIME type for path based on its extension, or
// [DefaultMIMEType] when the extension is unknown.
func TypeOf(path string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return DefaultMIMEType
}

// IsKnown reports whether the extension of path has a MIME type mapping.
func IsKnown(path string) bool {
	_, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

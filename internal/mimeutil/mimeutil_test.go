// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mimeutil

import "testing"

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "pdf", path: "report.pdf", want: "application/pdf"},
		{name: "pdf uppercase extension", path: "REPORT.PDF", want: "application/pdf"},
		{name: "text", path: "notes.txt", want: "text/plain"},
		{name: "markdown", path: "/tmp/readme.md", want: "text/markdown"},
		{name: "jpeg alias", path: "scan.jpeg", want: "image/jpeg"},
		{name: "unknown extension", path: "archive.zip", want: DefaultMIMEType},
		{name: "no extension", path: "Makefile", want: DefaultMIMEType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.path); got != tt.want {
				t.Errorf("TypeOf(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("doc.pdf") {
		t.Error("IsKnown(doc.pdf) = false, want true")
	}
	if IsKnown("doc.bin") {
		t.Error("IsKnown(doc.bin) = true, want false")
	}
}

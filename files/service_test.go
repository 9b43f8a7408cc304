// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/go-a2a/docproc-go/files"
)

func newTestClient(t *testing.T) *genai.Client {
	t.Helper()

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  "test-api-key",
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		t.Fatalf("failed to create genai client: %v", err)
	}
	return client
}

func TestNewService(t *testing.T) {
	client := newTestClient(t)

	tests := []struct {
		name    string
		client  *genai.Client
		opts    []files.ServiceOption
		wantErr bool
	}{
		{
			name:   "valid client",
			client: client,
		},
		{
			name:   "with custom logger",
			client: client,
			opts:   []files.ServiceOption{files.WithLogger(slog.Default())},
		},
		{
			name:    "nil client",
			client:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := files.NewService(tt.client, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewService() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && svc == nil {
				t.Error("NewService() returned nil service")
			}
		})
	}
}

func TestService_Upload_Validation(t *testing.T) {
	ctx := context.Background()
	svc, err := files.NewService(newTestClient(t))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	tests := []struct {
		name   string
		reader *strings.Reader
		config *files.UploadConfig
	}{
		{
			name:   "nil reader",
			reader: nil,
			config: &files.UploadConfig{MIMEType: "application/pdf"},
		},
		{
			name:   "nil config",
			reader: strings.NewReader("content"),
			config: nil,
		},
		{
			name:   "missing MIME type",
			reader: strings.NewReader("content"),
			config: &files.UploadConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.reader == nil {
				_, err = svc.Upload(ctx, nil, tt.config)
			} else {
				_, err = svc.Upload(ctx, tt.reader, tt.config)
			}
			if err == nil {
				t.Error("Upload() expected validation error, got nil")
			}
		})
	}
}

func TestService_ArgumentValidation(t *testing.T) {
	ctx := context.Background()
	svc, err := files.NewService(newTestClient(t))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	if _, err := svc.UploadPath(ctx, "", nil); err == nil {
		t.Error("UploadPath() with empty path expected error, got nil")
	}
	if _, err := svc.Get(ctx, ""); err == nil {
		t.Error("Get() with empty name expected error, got nil")
	}
	if err := svc.Delete(ctx, ""); err == nil {
		t.Error("Delete() with empty name expected error, got nil")
	}
	if _, err := svc.WaitActive(ctx, ""); err == nil {
		t.Error("WaitActive() with empty name expected error, got nil")
	}
}

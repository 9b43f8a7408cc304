// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package caching_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/go-a2a/docproc-go/caching"
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
	tests := []struct {
		name    string
		client  *genai.Client
		opts    []caching.ServiceOption
		wantErr bool
	}{
		{
			name:   "valid client",
			client: newTestClient(t),
		},
		{
			name:   "with custom logger",
			client: newTestClient(t),
			opts:   []caching.ServiceOption{caching.WithLogger(slog.Default())},
		},
		{
			name:    "nil client",
			client:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := caching.NewService(tt.client, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewService() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && svc == nil {
				t.Error("NewService() returned nil service")
			}
		})
	}
}

func TestIsSupportedModel(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gemini 2.0 flash", model: "gemini-2.0-flash", want: true},
		{name: "gemini 2.0 flash 001", model: "gemini-2.0-flash-001", want: true},
		{name: "gemini 1.5 pro", model: "gemini-1.5-pro", want: true},
		{name: "gemini 2.5 flash", model: "gemini-2.5-flash", want: true},
		{name: "legacy model", model: "gemini-1.0-pro", want: false},
		{name: "non gemini", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := caching.IsSupportedModel(tt.model); got != tt.want {
				t.Errorf("IsSupportedModel(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestService_CreateCache_Validation(t *testing.T) {
	ctx := context.Background()
	svc, err := caching.NewService(newTestClient(t))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(
			[]*genai.Part{genai.NewPartFromText("A large document to cache.")},
			genai.RoleUser,
		),
	}

	tests := []struct {
		name     string
		model    string
		contents []*genai.Content
		config   *caching.CacheConfig
	}{
		{
			name:     "empty model",
			model:    "",
			contents: contents,
		},
		{
			name:     "unsupported model",
			model:    "unsupported-model",
			contents: contents,
		},
		{
			name:     "no contents",
			model:    "gemini-2.0-flash",
			contents: nil,
			config:   &caching.CacheConfig{TTL: time.Hour},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateCache(ctx, tt.model, tt.contents, tt.config); err == nil {
				t.Error("CreateCache() expected validation error, got nil")
			}
		})
	}
}

func TestService_ArgumentValidation(t *testing.T) {
	ctx := context.Background()
	svc, err := caching.NewService(newTestClient(t))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	if _, err := svc.GetCache(ctx, ""); err == nil {
		t.Error("GetCache() with empty name expected error, got nil")
	}
	if err := svc.DeleteCache(ctx, ""); err == nil {
		t.Error("DeleteCache() with empty name expected error, got nil")
	}
	if _, err := svc.UpdateTTL(ctx, "", time.Hour); err == nil {
		t.Error("UpdateTTL() with empty name expected error, got nil")
	}
	if _, err := svc.UpdateTTL(ctx, "cachedContents/abc", 0); err == nil {
		t.Error("UpdateTTL() with zero TTL expected error, got nil")
	}
	if _, err := svc.GenerateWithCache(ctx, "gemini-2.0-flash", "", "prompt"); err == nil {
		t.Error("GenerateWithCache() with empty cache name expected error, got nil")
	}
	if _, err := svc.GenerateWithCache(ctx, "gemini-2.0-flash", "cachedContents/abc", ""); err == nil {
		t.Error("GenerateWithCache() with empty prompt expected error, got nil")
	}
}

// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/genai"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "rate limited",
			err:  genai.APIError{Code: 429, Message: "quota exceeded"},
			want: true,
		},
		{
			name: "server error",
			err:  genai.APIError{Code: 503, Message: "unavailable"},
			want: true,
		},
		{
			name: "bad request",
			err:  genai.APIError{Code: 400, Message: "invalid file"},
			want: false,
		},
		{
			name: "not found",
			err:  genai.APIError{Code: 404, Message: "expired cache"},
			want: false,
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("failed to generate: %w", genai.APIError{Code: 500}),
			want: true,
		},
		{
			name: "transport error",
			err:  errors.New("connection reset"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryable(tt.err); got != tt.want {
				t.Errorf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWithRetry_EventualSuccess(t *testing.T) {
	ctx := context.Background()
	policy := RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond, BackoffMultiplier: 1.0}

	attempts := 0
	got, err := withRetry(ctx, policy, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", genai.APIError{Code: 503, Message: "unavailable"}
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("withRetry() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("withRetry() = %q, want %q", got, "ok")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetry_PermanentError(t *testing.T) {
	ctx := context.Background()
	policy := RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond, BackoffMultiplier: 1.0}

	attempts := 0
	_, err := withRetry(ctx, policy, func() (string, error) {
		attempts++
		return "", genai.APIError{Code: 400, Message: "invalid file"}
	})
	if err == nil {
		t.Fatal("withRetry() expected error, got nil")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 for non-retryable error", attempts)
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != 400 {
		t.Errorf("withRetry() error = %v, want the original API error", err)
	}
}

func TestWithRetry_Disabled(t *testing.T) {
	ctx := context.Background()

	attempts := 0
	_, err := withRetry(ctx, RetryPolicy{}, func() (string, error) {
		attempts++
		return "", genai.APIError{Code: 503}
	})
	if err == nil {
		t.Fatal("withRetry() expected error, got nil")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 with retries disabled", attempts)
	}
}

// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package processor

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"google.golang.org/genai"
)

// RetryPolicy defines retry behavior for remote API calls.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retry attempts after the initial call.
	MaxRetries int `json:"max_retries,omitempty"`

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration `json:"initial_delay,omitempty"`

	// BackoffMultiplier is the multiplier applied to the delay between retries.
	BackoffMultiplier float64 `json:"backoff_multiplier,omitempty"`
}

// DefaultRetryPolicy retries rate-limited and server-side failures three
// times, starting at two seconds between attempts.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:        3,
	InitialDelay:      2 * time.Second,
	BackoffMultiplier: 2.0,
}

// retryable reports whether err is worth retrying. Rate limits and server
// errors retry; any other API error is final. Transport-level failures have
// no status code and retry.
func retryable(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}

// withRetry runs op under policy, backing off exponentially between attempts.
func withRetry[T any](ctx context.Context, policy RetryPolicy, op func() (T, error)) (T, error) {
	if policy.MaxRetries <= 0 {
		return op()
	}

	wrapped := func() (T, error) {
		v, err := op()
		if err != nil && !retryable(err) {
			var zero T
			return zero, backoff.Permanent(err)
		}
		return v, err
	}

	bo := backoff.NewExponentialBackOff()
	if policy.InitialDelay > 0 {
		bo.InitialInterval = policy.InitialDelay
	}
	if policy.BackoffMultiplier > 0 {
		bo.Multiplier = policy.BackoffMultiplier
	}

	return backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(policy.MaxRetries)+1),
	)
}

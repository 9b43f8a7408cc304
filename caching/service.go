// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package caching

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// Service provides context caching on top of the Gemini cached-content API.
//
// The service manages the cached content lifecycle (creation, retrieval,
// TTL updates, deletion) and issues generation requests against existing
// caches so large uploaded documents are only tokenized once.
type Service interface {
	// CreateCache creates a new cached content entry holding contents for
	// the given model. Only cache-capable model families are accepted.
	CreateCache(ctx context.Context, model string, contents []*genai.Content, config *CacheConfig) (*genai.CachedContent, error)

	// GetCache retrieves cached content metadata by name.
	GetCache(ctx context.Context, name string) (*genai.CachedContent, error)

	// ListCaches returns metadata for all caches. The cached contents
	// themselves are not retrievable.
	ListCaches(ctx context.Context) ([]*genai.CachedContent, error)

	// UpdateTTL moves the cache expiration to now+ttl.
	UpdateTTL(ctx context.Context, name string, ttl time.Duration) (*genai.CachedContent, error)

	// DeleteCache deletes a cache by name.
	DeleteCache(ctx context.Context, name string) error

	// GenerateWithCache generates text from prompt using previously cached
	// content. The model must match the model the cache was created for.
	GenerateWithCache(ctx context.Context, model, cacheName, prompt string) (string, error)
}

// service implements [Service] on top of a [*genai.Client].
type service struct {
	client *genai.Client
	logger *slog.Logger
}

var _ Service = (*service)(nil)

// ServiceOption is a functional option for configuring the caching service.
type ServiceOption func(*service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *service) {
		s.logger = logger
	}
}

// NewService creates a new context caching service backed by client.
func NewService(client *genai.Client, opts ...ServiceOption) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}

	s := &service{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// CreateCache implements [Service].
func (s *service) CreateCache(ctx context.Context, model string, contents []*genai.Content, config *CacheConfig) (*genai.CachedContent, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if !IsSupportedModel(model) {
		return nil, fmt.Errorf("model %s does not support context caching", model)
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("contents are required")
	}
	if config == nil {
		config = &CacheConfig{}
	}

	displayName := config.DisplayName
	if displayName == "" {
		displayName = "docproc-" + uuid.NewString()[:8]
	}

	createConfig := &genai.CreateCachedContentConfig{
		DisplayName: displayName,
		Contents:    contents,
	}
	if config.SystemInstruction != "" {
		createConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(config.SystemInstruction)},
		}
	}
	if config.TTL > 0 {
		createConfig.TTL = config.TTL
	}

	cache, err := s.client.Caches.Create(ctx, model, createConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	s.logger.InfoContext(ctx, "Created cache",
		slog.String("name", cache.Name),
		slog.String("model", model),
		slog.String("display_name", displayName),
	)

	return cache, nil
}

// GetCache implements [Service].
func (s *service) GetCache(ctx context.Context, name string) (*genai.CachedContent, error) {
	if name == "" {
		return nil, fmt.Errorf("cache name is required")
	}

	cache, err := s.client.Caches.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get cache %s: %w", name, err)
	}

	return cache, nil
}

// ListCaches implements [Service].
func (s *service) ListCaches(ctx context.Context) ([]*genai.CachedContent, error) {
	var out []*genai.CachedContent
	for cache, err := range s.client.Caches.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list caches: %w", err)
		}
		out = append(out, cache)
	}

	s.logger.InfoContext(ctx, "Listed caches", slog.Int("count", len(out)))

	return out, nil
}

// UpdateTTL implements [Service].
func (s *service) UpdateTTL(ctx context.Context, name string, ttl time.Duration) (*genai.CachedContent, error) {
	if name == "" {
		return nil, fmt.Errorf("cache name is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("TTL must be greater than 0")
	}

	cache, err := s.client.Caches.Update(ctx, name, &genai.UpdateCachedContentConfig{
		TTL: ttl,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update cache %s: %w", name, err)
	}

	s.logger.InfoContext(ctx, "Updated cache TTL",
		slog.String("name", name),
		slog.Duration("ttl", ttl),
	)

	return cache, nil
}

// DeleteCache implements [Service].
func (s *service) DeleteCache(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("cache name is required")
	}

	if _, err := s.client.Caches.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("failed to delete cache %s: %w", name, err)
	}

	s.logger.InfoContext(ctx, "Deleted cache", slog.String("name", name))

	return nil
}

// GenerateWithCache implements [Service].
func (s *service) GenerateWithCache(ctx context.Context, model, cacheName, prompt string) (string, error) {
	if model == "" {
		return "", fmt.Errorf("model is required")
	}
	if cacheName == "" {
		return "", fmt.Errorf("cache name is required")
	}
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}

	resp, err := s.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		CachedContent: cacheName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate from cache %s: %w", cacheName, err)
	}

	s.logger.InfoContext(ctx, "Generated content from cache",
		slog.String("cache_name", cacheName),
		slog.String("model", model),
	)

	return resp.Text(), nil
}

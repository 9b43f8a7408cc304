// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"google.golang.org/genai"

	"github.com/go-a2a/docproc-go/caching"
	"github.com/go-a2a/docproc-go/files"
	"github.com/go-a2a/docproc-go/internal/mimeutil"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.0-flash"

	// DefaultPrompt is the prompt sent alongside uploaded documents when
	// none is configured.
	DefaultPrompt = "Transcribe this document into text format preserving layout and formatting."

	// DefaultSystemInstruction is stored in created caches when none is configured.
	DefaultSystemInstruction = "You are processing documents efficiently."

	// EnvGeminiAPIKey is the environment variable name for the Gemini API key.
	EnvGeminiAPIKey = "GEMINI_API_KEY"

	// EnvGoogleAPIKey is the legacy environment variable name for the Google AI API key.
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)

// Generator is the surface of [genai.Models] the processor uses for
// generation without a cache.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Processor orchestrates document processing against the Gemini API.
//
// For each input it decides between passing uploaded file handles directly to
// the model and creating a server-side content cache first, issues the
// generate call, and maps responses back to the caller (or to output files in
// folder mode). All durable state lives on the remote service.
type Processor struct {
	files  files.Service
	caches caching.Service
	models Generator

	hc     *http.Client
	logger *slog.Logger

	model             string
	prompt            string
	systemInstruction string
	retry             RetryPolicy
	concurrency       int
}

// New creates a [Processor].
//
// When apiKey is empty, the GEMINI_API_KEY and GOOGLE_API_KEY environment
// variables are consulted in that order. The key is only required when no
// replacement services are injected via options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Processor, error) {
	p := &Processor{
		hc:                http.DefaultClient,
		logger:            slog.Default(),
		model:             DefaultModel,
		prompt:            DefaultPrompt,
		systemInstruction: DefaultSystemInstruction,
		retry:             DefaultRetryPolicy,
		concurrency:       1,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.files == nil || p.caches == nil || p.models == nil {
		if apiKey == "" {
			apiKey = os.Getenv(EnvGeminiAPIKey)
		}
		if apiKey == "" {
			apiKey = os.Getenv(EnvGoogleAPIKey)
		}
		if apiKey == "" {
			return nil, fmt.Errorf("either apiKey arg or %q / %q environment variable must be set", EnvGeminiAPIKey, EnvGoogleAPIKey)
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}

		if p.files == nil {
			if p.files, err = files.NewService(client, files.WithLogger(p.logger)); err != nil {
				return nil, err
			}
		}
		if p.caches == nil {
			if p.caches, err = caching.NewService(client, caching.WithLogger(p.logger)); err != nil {
				return nil, err
			}
		}
		if p.models == nil {
			p.models = client.Models
		}
	}

	return p, nil
}

// Files returns the underlying File API service.
func (p *Processor) Files() files.Service {
	return p.files
}

// Caches returns the underlying caching service.
func (p *Processor) Caches() caching.Service {
	return p.caches
}

// Model returns the configured model name.
func (p *Processor) Model() string {
	return p.model
}

// ProcessFile uploads a local file and returns the generated text.
func (p *Processor) ProcessFile(ctx context.Context, filePath string, opts *ProcessOptions) (string, error) {
	if opts == nil {
		opts = &ProcessOptions{}
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("file does not exist: %s: %w", filePath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("not a regular file: %s", filePath)
	}

	mimeType := opts.MIMEType
	if mimeType == "" {
		mimeType = localMIMEType(filePath)
	}

	p.logger.InfoContext(ctx, "Processing file",
		slog.String("path", filePath),
		slog.String("mime_type", mimeType),
	)

	file, err := p.uploadPath(ctx, filePath, mimeType)
	if err != nil {
		return "", err
	}

	return p.generate(ctx, []*genai.File{file}, opts)
}

// ProcessFromURL fetches a document over HTTP, uploads the bytes, and returns
// the generated text. The content is treated as a PDF unless
// [ProcessOptions.MIMEType] says otherwise.
func (p *Processor) ProcessFromURL(ctx context.Context, rawURL string, opts *ProcessOptions) (string, error) {
	if opts == nil {
		opts = &ProcessOptions{}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}

	p.logger.InfoContext(ctx, "Processing document from URL", slog.String("url", rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}

	resp, err := p.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	mimeType := opts.MIMEType
	if mimeType == "" {
		mimeType = "application/pdf"
	}

	displayName := path.Base(u.Path)
	if displayName == "." || displayName == "/" || displayName == "" {
		displayName = "document"
	}

	file, err := p.upload(ctx, resp.Body, mimeType, displayName)
	if err != nil {
		return "", err
	}

	return p.generate(ctx, []*genai.File{file}, opts)
}

// ProcessFiles uploads multiple local files and issues a single generate call
// covering all of them.
func (p *Processor) ProcessFiles(ctx context.Context, paths []string, opts *ProcessOptions) (string, error) {
	if opts == nil {
		opts = &ProcessOptions{}
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("no files to process")
	}

	handles := make([]*genai.File, 0, len(paths))
	for _, fp := range paths {
		mimeType := opts.MIMEType
		if mimeType == "" {
			mimeType = localMIMEType(fp)
		}

		file, err := p.uploadPath(ctx, fp, mimeType)
		if err != nil {
			return "", err
		}
		handles = append(handles, file)
	}

	return p.generate(ctx, handles, opts)
}

// ListCaches returns metadata for all caches owned by the project.
func (p *Processor) ListCaches(ctx context.Context) ([]*genai.CachedContent, error) {
	return p.caches.ListCaches(ctx)
}

// DeleteCache deletes a cache by name.
func (p *Processor) DeleteCache(ctx context.Context, name string) error {
	return p.caches.DeleteCache(ctx, name)
}

// uploadPath uploads a local file and waits for it to become active.
func (p *Processor) uploadPath(ctx context.Context, filePath, mimeType string) (*genai.File, error) {
	file, err := withRetry(ctx, p.retry, func() (*genai.File, error) {
		return p.files.UploadPath(ctx, filePath, &files.UploadConfig{
			MIMEType:    mimeType,
			DisplayName: filepath.Base(filePath),
		})
	})
	if err != nil {
		return nil, err
	}
	return p.files.WaitActive(ctx, file.Name)
}

// upload uploads raw bytes and waits for the file to become active.
func (p *Processor) upload(ctx context.Context, r io.Reader, mimeType, displayName string) (*genai.File, error) {
	file, err := p.files.Upload(ctx, r, &files.UploadConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, err
	}
	return p.files.WaitActive(ctx, file.Name)
}

// generate issues the generation call for the uploaded handles, caching the
// content first when requested.
func (p *Processor) generate(ctx context.Context, handles []*genai.File, opts *ProcessOptions) (string, error) {
	if opts.UseCache {
		cache, err := withRetry(ctx, p.retry, func() (*genai.CachedContent, error) {
			return p.caches.CreateCache(ctx, p.model, contentsFromHandles(handles), &caching.CacheConfig{
				SystemInstruction: p.systemInstruction,
				TTL:               opts.CacheTTL,
			})
		})
		if err != nil {
			return "", err
		}

		return withRetry(ctx, p.retry, func() (string, error) {
			return p.caches.GenerateWithCache(ctx, p.model, cache.Name, p.prompt)
		})
	}

	parts := make([]*genai.Part, 0, len(handles)+1)
	for _, f := range handles {
		parts = append(parts, genai.NewPartFromURI(f.URI, f.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(p.prompt))
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := withRetry(ctx, p.retry, func() (*genai.GenerateContentResponse, error) {
		return p.models.GenerateContent(ctx, p.model, contents, nil)
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return resp.Text(), nil
}

// contentsFromHandles wraps file handles into a single user content for caching.
func contentsFromHandles(handles []*genai.File) []*genai.Content {
	parts := make([]*genai.Part, 0, len(handles))
	for _, f := range handles {
		parts = append(parts, genai.NewPartFromURI(f.URI, f.MIMEType))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// localMIMEType infers the upload MIME type for a local file. Unknown
// extensions upload as plain text rather than octet-stream, which the
// generation endpoint rejects.
func localMIMEType(filePath string) string {
	if mimeutil.IsKnown(filePath) {
		return mimeutil.TypeOf(filePath)
	}
	return "text/plain"
}

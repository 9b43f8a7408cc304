// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/go-a2a/docproc-go/internal/mimeutil"
)

// UploadConfig configures a single File API upload.
type UploadConfig struct {
	// MIMEType is the MIME type of the uploaded content. When empty,
	// UploadPath infers it from the file extension and Upload rejects
	// the request.
	MIMEType string `json:"mime_type,omitempty"`

	// DisplayName is an optional human readable name stored with the file.
	DisplayName string `json:"display_name,omitempty"`
}

// Service provides access to the Gemini File API.
//
// Uploaded content is stored server-side and addressed by an opaque file
// handle ([*genai.File]). The File API enforces its own size limits; the
// service performs no local size checks.
type Service interface {
	// Upload sends the bytes read from r to the File API and returns the
	// resulting file handle. config.MIMEType is required.
	Upload(ctx context.Context, r io.Reader, config *UploadConfig) (*genai.File, error)

	// UploadPath uploads a local file. The MIME type is taken from config
	// when set, otherwise inferred from the file extension.
	UploadPath(ctx context.Context, path string, config *UploadConfig) (*genai.File, error)

	// Get retrieves metadata for an uploaded file by name.
	Get(ctx context.Context, name string) (*genai.File, error)

	// List returns metadata for all files currently stored via the File API.
	List(ctx context.Context) ([]*genai.File, error)

	// Delete removes an uploaded file by name.
	Delete(ctx context.Context, name string) error

	// WaitActive polls the file until it leaves the PROCESSING state and
	// returns the refreshed handle. It fails if the file enters the FAILED
	// state or ctx is done first.
	WaitActive(ctx context.Context, name string) (*genai.File, error)
}

// service implements [Service] on top of a [*genai.Client].
type service struct {
	client       *genai.Client
	logger       *slog.Logger
	pollInterval time.Duration
}

var _ Service = (*service)(nil)

// ServiceOption is a functional option for configuring the file service.
type ServiceOption func(*service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *service) {
		s.logger = logger
	}
}

// WithPollInterval sets the interval used by WaitActive. The default is one second.
func WithPollInterval(d time.Duration) ServiceOption {
	return func(s *service) {
		s.pollInterval = d
	}
}

// NewService creates a new File API service backed by client.
func NewService(client *genai.Client, opts ...ServiceOption) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}

	s := &service{
		client:       client,
		logger:       slog.Default(),
		pollInterval: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Upload implements [Service].
func (s *service) Upload(ctx context.Context, r io.Reader, config *UploadConfig) (*genai.File, error) {
	if r == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if config == nil || config.MIMEType == "" {
		return nil, fmt.Errorf("MIME type is required for reader uploads")
	}

	file, err := s.client.Files.Upload(ctx, r, &genai.UploadFileConfig{
		MIMEType:    config.MIMEType,
		DisplayName: config.DisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload content: %w", err)
	}

	s.logger.InfoContext(ctx, "Uploaded file",
		slog.String("name", file.Name),
		slog.String("mime_type", config.MIMEType),
	)

	return file, nil
}

// UploadPath implements [Service].
func (s *service) UploadPath(ctx context.Context, path string, config *UploadConfig) (*genai.File, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if config == nil {
		config = &UploadConfig{}
	}

	mimeType := config.MIMEType
	if mimeType == "" {
		mimeType = mimeutil.TypeOf(path)
	}

	file, err := s.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: config.DisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", path, err)
	}

	s.logger.InfoContext(ctx, "Uploaded file",
		slog.String("path", path),
		slog.String("name", file.Name),
		slog.String("mime_type", mimeType),
	)

	return file, nil
}

// Get implements [Service].
func (s *service) Get(ctx context.Context, name string) (*genai.File, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}

	file, err := s.client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", name, err)
	}

	return file, nil
}

// List implements [Service].
func (s *service) List(ctx context.Context) ([]*genai.File, error) {
	var out []*genai.File
	for file, err := range s.client.Files.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}
		out = append(out, file)
	}

	s.logger.InfoContext(ctx, "Listed files", slog.Int("count", len(out)))

	return out, nil
}

// Delete implements [Service].
func (s *service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("file name is required")
	}

	if _, err := s.client.Files.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", name, err)
	}

	s.logger.InfoContext(ctx, "Deleted file", slog.String("name", name))

	return nil
}

// WaitActive implements [Service].
func (s *service) WaitActive(ctx context.Context, name string) (*genai.File, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}

	for {
		file, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}

		switch file.State {
		case genai.FileStateProcessing:
			s.logger.DebugContext(ctx, "File still processing", slog.String("name", name))
		case genai.FileStateFailed:
			return nil, fmt.Errorf("file %s failed server-side processing", name)
		default:
			return file, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for file %s: %w", name, ctx.Err())
		case <-time.After(s.pollInterval):
		}
	}
}

// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultOutputExt is the output file extension used by ProcessFolder when
// none is configured.
const DefaultOutputExt = "md"

// FolderOptions adjusts how ProcessFolder runs.
type FolderOptions struct {
	// OutputDir is where generated files are written. It defaults to the
	// input folder and is created if missing.
	OutputDir string `json:"output_dir,omitempty"`

	// OutputExt is the extension of generated files, without the leading
	// dot. Defaults to [DefaultOutputExt].
	OutputExt string `json:"output_ext,omitempty"`

	// Process applies to each file in the folder.
	Process ProcessOptions `json:"process,omitzero"`
}

// FolderResult records the outcome for one input file of a folder run.
type FolderResult struct {
	// Input is the path of the processed file.
	Input string `json:"input"`

	// Output is the path the generated text was written to. Empty when the
	// file failed.
	Output string `json:"output,omitempty"`

	// Err is the per-file failure, if any.
	Err error `json:"-"`
}

// ProcessFolder processes every regular file in dir and writes one output
// file per input, named after the input with the configured extension.
//
// Per-file failures are recorded in the returned results and logged; they do
// not abort the rest of the batch. Files are processed with the bounded
// concurrency configured via [WithConcurrency].
func (p *Processor) ProcessFolder(ctx context.Context, dir string, opts *FolderOptions) ([]FolderResult, error) {
	if opts == nil {
		opts = &FolderOptions{}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("folder does not exist: %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a folder: %s", dir)
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", outDir, err)
	}

	ext := strings.TrimPrefix(opts.OutputExt, ".")
	if ext == "" {
		ext = DefaultOutputExt
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			inputs = append(inputs, filepath.Join(dir, entry.Name()))
		}
	}

	p.logger.InfoContext(ctx, "Processing folder",
		slog.String("dir", dir),
		slog.String("output_dir", outDir),
		slog.Int("files", len(inputs)),
		slog.Int("concurrency", p.concurrency),
	)

	results := make([]FolderResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			results[i] = p.processFolderFile(gctx, input, outDir, ext, &opts.Process)
			return nil
		})
	}
	// Goroutines never return errors; failures stay per-file.
	_ = g.Wait()

	return results, nil
}

// processFolderFile processes one folder entry and writes its output file.
func (p *Processor) processFolderFile(ctx context.Context, input, outDir, ext string, opts *ProcessOptions) FolderResult {
	result := FolderResult{Input: input}

	text, err := p.ProcessFile(ctx, input, opts)
	if err != nil {
		p.logger.WarnContext(ctx, "Failed to process file",
			slog.String("path", input),
			slog.Any("error", err),
		)
		result.Err = err
		return result
	}
	if text == "" {
		p.logger.WarnContext(ctx, "No output for file", slog.String("path", input))
		result.Err = fmt.Errorf("empty response for %s", input)
		return result
	}

	output := outputPath(outDir, input, ext)
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		result.Err = fmt.Errorf("failed to write %s: %w", output, err)
		return result
	}

	p.logger.InfoContext(ctx, "Saved output",
		slog.String("input", input),
		slog.String("output", output),
	)
	result.Output = output

	return result
}

// outputPath maps an input file onto its output path: the input's stem plus
// the configured extension, inside outDir.
func outputPath(outDir, input, ext string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, stem+"."+ext)
}

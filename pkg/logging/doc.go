// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// The logging package implements a context-based logging pattern that allows loggers to be stored
// in and retrieved from context.Context values. This enables consistent logging throughout the
// library with automatic logger propagation.
//
// # Basic Usage
//
// Creating a logger context:
//
//	logger := logging.New(os.Stderr, slog.LevelDebug)
//	ctx := logging.NewContext(ctx, logger)
//
// Retrieving a logger from context:
//
//	logger := logging.FromContext(ctx)
//	logger.Info("document processed", "path", path, "duration", duration)
//
// # Default Behavior
//
// When no logger is found in the context, FromContext returns a default JSON logger
// that writes to stdout with INFO level logging. This ensures logging always works
// even when no explicit logger is configured.
//
// # Log Levels
//
// ParseLevel maps the string levels accepted by the CLI's --log-level flag and the
// DOCPROC_LOG_LEVEL environment variable onto slog levels.
//
// # Thread Safety
//
// The logging package is safe for concurrent use. Multiple goroutines can safely
// access loggers from context without additional synchronization.
package logging

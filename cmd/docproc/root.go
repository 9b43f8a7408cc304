// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/bytedance/sonic"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/go-a2a/docproc-go/pkg/logging"
	"github.com/go-a2a/docproc-go/processor"
)

// config holds the environment-driven settings. Flags take precedence.
type config struct {
	APIKey       string `env:"GEMINI_API_KEY"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	Model        string `env:"DOCPROC_MODEL"`
	LogLevel     string `env:"DOCPROC_LOG_LEVEL" envDefault:"info"`
}

var (
	cfg    config
	logger *slog.Logger

	flagModel    string
	flagPrompt   string
	flagSystem   string
	flagLogLevel string
	flagJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "docproc",
	Short: "Process documents with the Google Gemini API",
	Long: heredoc.Doc(`
		docproc uploads documents to the Gemini File API and requests
		AI-generated transcriptions or summaries. Large documents can be
		cached server-side so repeated prompts avoid re-tokenization.

		The API key is read from GEMINI_API_KEY or GOOGLE_API_KEY, with a
		.env file in the working directory loaded first if present.
	`),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env files are fine; explicit env vars still apply.
		_ = godotenv.Load()

		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("failed to parse environment: %w", err)
		}

		levelName := flagLogLevel
		if levelName == "" {
			levelName = cfg.LogLevel
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger = logging.New(os.Stderr, level)

		cmd.SetContext(logging.NewContext(cmd.Context(), logger))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "model name (default "+processor.DefaultModel+")")
	rootCmd.PersistentFlags().StringVar(&flagPrompt, "prompt", "", "prompt sent alongside uploaded documents")
	rootCmd.PersistentFlags().StringVar(&flagSystem, "system", "", "system instruction stored in created caches")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print results as JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// apiKey resolves the configured API key, preferring GEMINI_API_KEY.
func apiKey() string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return cfg.GoogleAPIKey
}

// newProcessor builds a processor from the global flags and environment.
func newProcessor(ctx context.Context, opts ...processor.Option) (*processor.Processor, error) {
	base := []processor.Option{processor.WithLogger(logger)}

	model := flagModel
	if model == "" {
		model = cfg.Model
	}
	if model != "" {
		base = append(base, processor.WithModel(model))
	}
	if flagPrompt != "" {
		base = append(base, processor.WithPrompt(flagPrompt))
	}
	if flagSystem != "" {
		base = append(base, processor.WithSystemInstruction(flagSystem))
	}

	return processor.New(ctx, apiKey(), append(base, opts...)...)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// writeResult writes text to path, or to stdout when path is empty.
func writeResult(text, path string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

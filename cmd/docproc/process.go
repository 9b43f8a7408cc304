// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/go-a2a/docproc-go/processor"
)

var (
	flagUseCache bool
	flagCacheTTL time.Duration
	flagMIME     string
	flagOut      string
	flagOutDir   string
	flagOutExt   string
	flagWorkers  int
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a file, URL, or folder",
}

var processFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Transcribe or summarize a local file",
	Long: heredoc.Doc(`
		Upload a local file to the Gemini File API and print the generated
		text. With --use-cache the uploaded content is stored in a
		server-side cache before generation.

		Examples:
		  docproc process file report.pdf
		  docproc process file report.pdf --use-cache --cache-ttl 2h --out report.md
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx)
		if err != nil {
			return err
		}

		text, err := p.ProcessFile(ctx, args[0], &processor.ProcessOptions{
			UseCache: flagUseCache,
			CacheTTL: flagCacheTTL,
			MIMEType: flagMIME,
		})
		if err != nil {
			return err
		}

		return writeResult(text, flagOut)
	},
}

var processURLCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Transcribe or summarize a document fetched from a URL",
	Long: heredoc.Doc(`
		Fetch a document over HTTP, upload it to the Gemini File API, and
		print the generated text. The content is treated as a PDF unless
		--mime says otherwise.

		Examples:
		  docproc process url https://example.com/paper.pdf
		  docproc process url https://example.com/notes.txt --mime text/plain
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx)
		if err != nil {
			return err
		}

		text, err := p.ProcessFromURL(ctx, args[0], &processor.ProcessOptions{
			UseCache: flagUseCache,
			CacheTTL: flagCacheTTL,
			MIMEType: flagMIME,
		})
		if err != nil {
			return err
		}

		return writeResult(text, flagOut)
	},
}

var processFolderCmd = &cobra.Command{
	Use:   "folder <dir>",
	Short: "Process every file in a folder",
	Long: heredoc.Doc(`
		Process every regular file in a folder and write one output file per
		input, named after the input with the configured extension.

		Examples:
		  docproc process folder ./scans --out-dir ./out --out-ext md
		  docproc process folder ./scans --workers 4
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx, processor.WithConcurrency(flagWorkers))
		if err != nil {
			return err
		}

		results, err := p.ProcessFolder(ctx, args[0], &processor.FolderOptions{
			OutputDir: flagOutDir,
			OutputExt: flagOutExt,
			Process: processor.ProcessOptions{
				UseCache: flagUseCache,
				CacheTTL: flagCacheTTL,
				MIMEType: flagMIME,
			},
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(results)
		}

		var failed int
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Printf("FAIL %s: %v\n", r.Input, r.Err)
				continue
			}
			fmt.Printf("OK   %s -> %s\n", r.Input, r.Output)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{processFileCmd, processURLCmd, processFolderCmd} {
		cmd.Flags().BoolVar(&flagUseCache, "use-cache", false, "cache uploaded content server-side before generating")
		cmd.Flags().DurationVar(&flagCacheTTL, "cache-ttl", 0, "cache time-to-live, e.g. 2h (0 = server default)")
		cmd.Flags().StringVar(&flagMIME, "mime", "", "override the MIME type of the uploaded content")
	}
	processFileCmd.Flags().StringVar(&flagOut, "out", "", "write the result to this file instead of stdout")
	processURLCmd.Flags().StringVar(&flagOut, "out", "", "write the result to this file instead of stdout")

	processFolderCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "output directory (default: the input folder)")
	processFolderCmd.Flags().StringVar(&flagOutExt, "out-ext", processor.DefaultOutputExt, "output file extension")
	processFolderCmd.Flags().IntVar(&flagWorkers, "workers", 1, "number of files processed in parallel")

	processCmd.AddCommand(processFileCmd, processURLCmd, processFolderCmd)
	rootCmd.AddCommand(processCmd)
}

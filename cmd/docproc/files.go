// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage files stored via the Gemini File API",
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all uploaded files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx)
		if err != nil {
			return err
		}

		stored, err := p.Files().List(ctx)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(stored)
		}
		if len(stored) == 0 {
			fmt.Println("no files")
			return nil
		}
		for _, f := range stored {
			fmt.Printf("%s\t%s\t%s\n", f.Name, f.MIMEType, f.State)
		}
		return nil
	},
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an uploaded file by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx)
		if err != nil {
			return err
		}

		if err := p.Files().Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}

func init() {
	filesCmd.AddCommand(filesListCmd, filesDeleteCmd)
	rootCmd.AddCommand(filesCmd)
}

// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var flagTTL time.Duration

var cachesCmd = &cobra.Command{
	Use:   "caches",
	Short: "Manage server-side content caches",
	Long: heredoc.Doc(`
		Content caches hold uploaded document content server-side for their
		time-to-live window. Only metadata is retrievable; the cached
		contents themselves are not.
	`),
}

var cachesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all content caches",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx)
		if err != nil {
			return err
		}

		caches, err := p.ListCaches(ctx)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(caches)
		}
		if len(caches) == 0 {
			fmt.Println("no caches")
			return nil
		}
		for _, c := range caches {
			fmt.Printf("%s\tmodel=%s\texpires=%s\n", c.Name, c.Model, c.ExpireTime.Format(time.RFC3339))
		}
		return nil
	},
}

var cachesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a content cache by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx)
		if err != nil {
			return err
		}

		if err := p.DeleteCache(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}

var cachesUpdateTTLCmd = &cobra.Command{
	Use:   "update-ttl <name>",
	Short: "Move a cache's expiration to now plus the given TTL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := newProcessor(ctx)
		if err != nil {
			return err
		}

		cache, err := p.Caches().UpdateTTL(ctx, args[0], flagTTL)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(cache)
		}
		fmt.Printf("%s\texpires=%s\n", cache.Name, cache.ExpireTime.Format(time.RFC3339))
		return nil
	},
}

func init() {
	cachesUpdateTTLCmd.Flags().DurationVar(&flagTTL, "ttl", 2*time.Hour, "new time-to-live, e.g. 90m")

	cachesCmd.AddCommand(cachesListCmd, cachesDeleteCmd, cachesUpdateTTLCmd)
	rootCmd.AddCommand(cachesCmd)
}

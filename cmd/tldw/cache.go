package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tldw/internal/cache"
	"tldw/internal/config"
)

func newCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the summary cache",
	}
	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, store cache.Store) error {
				store.Clear(ctx)
				fmt.Println("cache cleared")
				return nil
			})
		},
	})
	cacheCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Count cached entries by kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, store cache.Store) error {
				keys, ok := store.Keys(ctx, "*")
				if !ok {
					return fmt.Errorf("store does not support enumeration (mode: %s)", store.Mode())
				}
				bundles, indexes, urls := 0, 0, 0
				for _, key := range keys {
					switch {
					case strings.HasPrefix(key, "summary:"):
						bundles++
					case strings.HasPrefix(key, "summary_index:"):
						indexes++
					case strings.HasPrefix(key, "rate_limit:"):
						// Cooldowns are transient; not counted.
					default:
						urls++
					}
				}
				fmt.Printf("url summaries:        %d\n", urls)
				fmt.Printf("conversation bundles: %d\n", bundles)
				fmt.Printf("channel indexes:      %d\n", indexes)
				return nil
			})
		},
	})
	return cacheCmd
}

func withStore(ctx context.Context, fn func(context.Context, cache.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store := cache.Open(opCtx, cfg, logger)
	if store.Mode() == "noop" {
		return fmt.Errorf("redis unreachable, nothing to manage")
	}
	return fn(opCtx, store)
}

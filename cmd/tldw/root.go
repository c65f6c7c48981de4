package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tldw/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tldw",
		Short:        "Chat bot that summarizes videos, pages and conversations",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCacheCmd())
	return root
}

// newLogger builds the process logger. Development gets human-readable
// console output, production structured JSON.
func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tldw/internal/cache"
	"tldw/internal/commands"
	"tldw/internal/config"
	"tldw/internal/content"
	"tldw/internal/health"
	"tldw/internal/llm"
	"tldw/internal/ratelimit"
	"tldw/internal/summarizer"
	"tldw/internal/telegram"
	"tldw/internal/topics"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	store := cache.Open(ctx, cfg, logger)
	summaryCache := cache.NewSummaryCache(store, cfg.CacheTTL(), cfg.BundleTTL, logger)
	limiter := ratelimit.New(store, logger)

	gen, err := llm.NewGenerator(llm.Provider(cfg.Provider), cfg.Model, cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("initialize llm backend: %w", err)
	}

	extractor := content.NewBrowserExtractor(content.BrowserConfig{
		Headless:   cfg.BrowserHeadless,
		ChromePath: cfg.ChromePath,
	}, logger)
	if err := extractor.Start(ctx); err != nil {
		// URL commands will fail individually; conversation analysis
		// still works.
		logger.Warn().Err(err).Msg("browser unavailable, content extraction disabled")
	}
	defer extractor.Stop()

	deps := &commands.Deps{
		Cache:      summaryCache,
		Limiter:    limiter,
		Extractor:  extractor,
		Summarizer: summarizer.New(gen, logger),
		Analyzer:   topics.NewAnalyzer(gen, logger),
		Config:     cfg,
		Logger:     logger,
	}

	registry := commands.NewRegistry()
	registry.Register(commands.NewTldw(deps))
	registry.Register(commands.NewTldr(deps))
	registry.Register(commands.NewSummary(deps))
	registry.Register(commands.NewHelp(registry))

	runner := commands.NewRunner(limiter, logger)

	go func() {
		hs := health.New(store, cfg.Provider, logger)
		if err := hs.ListenAndServe(ctx, cfg.HealthPort); err != nil {
			logger.Error().Err(err).Msg("health endpoint failed")
		}
	}()

	bot, err := telegram.NewBot(cfg.TelegramToken, registry, runner, logger)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}

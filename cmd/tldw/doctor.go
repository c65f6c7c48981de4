package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tldw/internal/cache"
	"tldw/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(24)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print resolved configuration and connectivity status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doctor(cmd.Context())
		},
	}
}

func doctor(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	fmt.Println(titleStyle.Render("tldw configuration"))
	row("provider", cfg.Provider)
	row("model", orDefault(cfg.Model, "(provider default)"))
	row("cache TTL", cfg.CacheTTL().String())
	row("bundle TTL", cfg.BundleTTL.String())
	row("bundle keep count", fmt.Sprintf("%d", cfg.BundleKeepCount))
	row("history limit", fmt.Sprintf("%d", cfg.MessageHistoryLimit))
	row("user rate limit", cfg.UserRateLimit.String())
	row("channel rate limit", cfg.ChannelRateLimit.String())
	row("request timeout", cfg.RequestTimeout.String())
	row("health port", cfg.HealthPort)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	store := cache.Open(pingCtx, cfg, logger)
	if store.Mode() == "redis" {
		row("redis", okStyle.Render("connected"))
	} else {
		row("redis", warnStyle.Render("unreachable (degraded no-op mode)"))
	}

	if cfg.TelegramToken == "" {
		row("telegram token", warnStyle.Render("not set"))
	} else {
		row("telegram token", okStyle.Render("set"))
	}
	return nil
}

func row(key, value string) {
	fmt.Println(keyStyle.Render(key) + " " + value)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

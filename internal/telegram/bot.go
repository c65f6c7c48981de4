// Package telegram runs the bot against the Telegram Bot API via telebot.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v3"

	"tldw/internal/commands"
	"tldw/internal/messages"
)

// Bot wires the command registry to Telegram updates. Each update is
// handled on its own goroutine by telebot, so concurrent command
// invocations across chats come for free.
type Bot struct {
	bot      *tele.Bot
	registry *commands.Registry
	runner   *commands.Runner
	recorder *Recorder
	logger   zerolog.Logger
}

func NewBot(token string, registry *commands.Registry, runner *commands.Runner, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	tb, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b := &Bot{
		bot:      tb,
		registry: registry,
		runner:   runner,
		recorder: NewRecorder(),
		logger:   logger,
	}
	b.setupHandlers()
	return b, nil
}

// Start begins polling for updates and blocks until ctx is canceled.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info().Str("username", b.bot.Me.Username).Msg("telegram bot started")

	go func() {
		<-ctx.Done()
		b.logger.Info().Msg("shutting down telegram bot")
		b.bot.Stop()
	}()

	b.bot.Start()
	return nil
}

func (b *Bot) setupHandlers() {
	b.bot.Handle("/start", func(c tele.Context) error {
		return c.Send("Hi! I summarize videos, pages and conversations. Try /help.")
	})

	for _, cmd := range b.registry.All() {
		cmd := cmd
		b.bot.Handle("/"+cmd.Name(), func(c tele.Context) error {
			_ = c.Notify(tele.Typing)
			sc := newSlashContext(c, b.recorder)
			return b.runner.Run(context.Background(), cmd, sc, sc.args)
		})
	}

	b.bot.Handle(tele.OnText, b.handleText)
}

// handleText records ordinary chat messages for later analysis and routes
// bang-prefixed legacy command invocations.
func (b *Bot) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "!") {
		name := strings.TrimPrefix(strings.Fields(text)[0], "!")
		if cmd, ok := b.registry.Get(name); ok {
			_ = c.Notify(tele.Typing)
			lc := newLegacyContext(c, b.recorder)
			return b.runner.Run(context.Background(), cmd, lc, lc.args)
		}
		return nil
	}

	b.recorder.Record(toMessage(c))
	return nil
}

func toMessage(c tele.Context) messages.Message {
	sender := c.Sender()
	name := sender.Username
	if name == "" {
		name = strings.TrimSpace(sender.FirstName + " " + sender.LastName)
	}
	return messages.Message{
		ID:      strconv.Itoa(c.Message().ID),
		Content: c.Text(),
		Author: messages.Author{
			ID:   strconv.FormatInt(sender.ID, 10),
			Name: name,
			Bot:  sender.IsBot,
		},
		CreatedAt: c.Message().Time(),
		ChannelID: strconv.FormatInt(c.Chat().ID, 10),
	}
}

// Package commands implements the bot's command set and the dispatch
// machinery around it: a registry, a platform-neutral conversation surface,
// rate limiting and top-level error handling.
package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tldw/internal/cache"
	"tldw/internal/config"
	"tldw/internal/content"
	"tldw/internal/messages"
	"tldw/internal/ratelimit"
	"tldw/internal/summarizer"
	"tldw/internal/topics"
)

// ErrPermissionDenied is returned by Context.History when the bot cannot
// read channel history. It must stay distinguishable from an empty history
// so the user can be told which permission is missing.
var ErrPermissionDenied = errors.New("cannot read message history")

// Context is the surface a command talks to the conversation through. The
// chat-platform adapter provides one per invocation.
type Context interface {
	// Send delivers one text response to the conversation.
	Send(text string) error

	// AuthorID identifies the invoking user.
	AuthorID() string

	// ChannelID identifies the conversation.
	ChannelID() string

	// History returns up to limit recent messages from the conversation,
	// newest first, excluding the invoking command message. Returns
	// ErrPermissionDenied when history is not readable.
	History(ctx context.Context, limit int) ([]messages.Message, error)
}

// Command is a single bot command.
type Command interface {
	Name() string
	Description() string

	// Execute runs the command. Expected conditions (bad input, nothing to
	// summarize) are reported to the user via cc and return nil; only
	// unexpected failures return an error, which the Runner logs and
	// surfaces generically.
	Execute(ctx context.Context, cc Context, args []string) error
}

// RateLimited is implemented by commands carrying per-user and per-channel
// cooldowns.
type RateLimited interface {
	UserLimit() time.Duration
	ChannelLimit() time.Duration
}

// Deps bundles the collaborators commands execute against. One Deps is
// built at startup and shared by every command.
type Deps struct {
	Cache      *cache.SummaryCache
	Limiter    *ratelimit.Limiter
	Extractor  content.Extractor
	Summarizer *summarizer.Summarizer
	Analyzer   *topics.Analyzer
	Config     *config.Config
	Logger     zerolog.Logger
}

// Registry holds the registered commands. Explicitly constructed and passed
// around instead of living in package state.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.commands[cmd.Name()]; dup {
		panic("commands: Register called twice for " + cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns the registered commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Runner executes commands with rate limiting and centralized error
// handling, so command implementations can simply return failures.
type Runner struct {
	limiter *ratelimit.Limiter
	logger  zerolog.Logger
}

func NewRunner(limiter *ratelimit.Limiter, logger zerolog.Logger) *Runner {
	return &Runner{limiter: limiter, logger: logger}
}

// Run checks the command's cooldowns and executes it. The user cooldown is
// checked before the channel cooldown so a denied user never consumes the
// channel's slot. All failures are logged and reported here; Run itself
// only fails when the response cannot be delivered.
func (r *Runner) Run(ctx context.Context, cmd Command, cc Context, args []string) error {
	if rl, ok := cmd.(RateLimited); ok {
		if window := rl.UserLimit(); window > 0 {
			if !r.limiter.Allow(ctx, cc.AuthorID(), cmd.Name(), window) {
				return cc.Send(fmt.Sprintf(
					"You can only use the %s command once every %d minutes. Please wait before trying again.",
					cmd.Name(), int(window.Minutes())))
			}
		}
		if window := rl.ChannelLimit(); window > 0 {
			if !r.limiter.Allow(ctx, cc.ChannelID(), cmd.Name()+":channel", window) {
				return cc.Send(fmt.Sprintf(
					"The %s command was used recently in this channel. Please wait before using it again.",
					cmd.Name()))
			}
		}
	}

	if err := cmd.Execute(ctx, cc, args); err != nil {
		r.logger.Error().Err(err).
			Str("command", cmd.Name()).
			Str("user", cc.AuthorID()).
			Str("channel", cc.ChannelID()).
			Msg("command failed")
		return cc.Send(fmt.Sprintf(
			"An error occurred while executing the %s command: %v", cmd.Name(), err))
	}
	return nil
}

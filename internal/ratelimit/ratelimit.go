// Package ratelimit implements per-subject command cooldowns on top of the
// cache store.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"tldw/internal/cache"
)

// Limiter grants one execution per subject per window. A cooldown is a
// key whose existence means "currently limited"; creating it and deciding
// "may proceed" is a single atomic SetIfAbsent, so two concurrent requests
// from the same subject can never both be admitted.
//
// With a degraded store SetIfAbsent always succeeds and the limiter fails
// open: commands run unthrottled rather than not at all.
type Limiter struct {
	store  cache.Store
	logger zerolog.Logger
}

func New(store cache.Store, logger zerolog.Logger) *Limiter {
	return &Limiter{store: store, logger: logger}
}

func cooldownKey(command, subjectID string) string {
	return fmt.Sprintf("rate_limit:%s:%s", command, subjectID)
}

// Allow reports whether subjectID may run command now. When it returns true
// the subject's cooldown has started.
func (l *Limiter) Allow(ctx context.Context, subjectID, command string, window time.Duration) bool {
	if window <= 0 {
		return true
	}
	allowed := l.store.SetIfAbsent(ctx, cooldownKey(command, subjectID), "1", window)
	if !allowed {
		l.logger.Debug().Str("command", command).Str("subject", subjectID).
			Msg("rate limited")
	}
	return allowed
}

// Reset clears an active cooldown. Used by the CLI for unsticking a subject.
func (l *Limiter) Reset(ctx context.Context, subjectID, command string) {
	l.store.Delete(ctx, cooldownKey(command, subjectID))
}

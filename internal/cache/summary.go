package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// SummaryCache stores generated summaries on top of a Store.
//
// Single-URL summaries are keyed by the URL itself and live for a long TTL
// (page content is mostly static). Conversation bundles are keyed by
// channel and message-range fingerprint and live for a shorter TTL, since
// topics drift faster than page content. A per-channel index key records
// bundle insertion order so old bundles can be evicted without relying on
// backend key ordering.
type SummaryCache struct {
	store     Store
	urlTTL    time.Duration
	bundleTTL time.Duration
	logger    zerolog.Logger
}

func NewSummaryCache(store Store, urlTTL, bundleTTL time.Duration, logger zerolog.Logger) *SummaryCache {
	return &SummaryCache{
		store:     store,
		urlTTL:    urlTTL,
		bundleTTL: bundleTTL,
		logger:    logger,
	}
}

// Store exposes the underlying key-value store.
func (c *SummaryCache) Store() Store { return c.store }

// GetSummary returns a cached single-URL summary.
func (c *SummaryCache) GetSummary(ctx context.Context, url string) (string, bool) {
	return c.store.Get(ctx, url)
}

// PutSummary caches a single-URL summary with the long TTL.
func (c *SummaryCache) PutSummary(ctx context.Context, url, summary string) {
	c.store.Set(ctx, url, summary, c.urlTTL)
}

func bundleKey(channelID, fingerprint string) string {
	return fmt.Sprintf("summary:%s:%s", channelID, fingerprint)
}

func bundleIndexKey(channelID string) string {
	return fmt.Sprintf("summary_index:%s", channelID)
}

// GetBundle decodes a cached conversation bundle into dest. A missing or
// undecodable entry is a miss.
func (c *SummaryCache) GetBundle(ctx context.Context, channelID, fingerprint string, dest any) bool {
	raw, ok := c.store.Get(ctx, bundleKey(channelID, fingerprint))
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logger.Warn().Err(err).Str("channel", channelID).Msg("dropping undecodable cached bundle")
		c.store.Delete(ctx, bundleKey(channelID, fingerprint))
		return false
	}
	return true
}

// PutBundle caches a conversation bundle and records its fingerprint in the
// channel's insertion-order index.
func (c *SummaryCache) PutBundle(ctx context.Context, channelID, fingerprint string, bundle any) {
	raw, err := json.Marshal(bundle)
	if err != nil {
		c.logger.Error().Err(err).Str("channel", channelID).Msg("bundle not cacheable")
		return
	}
	c.store.Set(ctx, bundleKey(channelID, fingerprint), string(raw), c.bundleTTL)
	c.appendToIndex(ctx, channelID, fingerprint)
}

// CleanupOldSummaries deletes all but the most recent keep bundles for a
// channel. Best-effort: with a degraded store the index reads back empty and
// nothing happens.
func (c *SummaryCache) CleanupOldSummaries(ctx context.Context, channelID string, keep int) {
	fingerprints := c.readIndex(ctx, channelID)
	if len(fingerprints) <= keep {
		return
	}

	evict := fingerprints[:len(fingerprints)-keep]
	for _, fp := range evict {
		c.store.Delete(ctx, bundleKey(channelID, fp))
	}
	c.writeIndex(ctx, channelID, fingerprints[len(fingerprints)-keep:])

	c.logger.Debug().Str("channel", channelID).Int("evicted", len(evict)).
		Msg("evicted old conversation bundles")
}

// Clear wipes the whole store.
func (c *SummaryCache) Clear(ctx context.Context) {
	c.store.Clear(ctx)
}

func (c *SummaryCache) readIndex(ctx context.Context, channelID string) []string {
	raw, ok := c.store.Get(ctx, bundleIndexKey(channelID))
	if !ok {
		return nil
	}
	var fingerprints []string
	if err := json.Unmarshal([]byte(raw), &fingerprints); err != nil {
		return nil
	}
	return fingerprints
}

func (c *SummaryCache) writeIndex(ctx context.Context, channelID string, fingerprints []string) {
	raw, err := json.Marshal(fingerprints)
	if err != nil {
		return
	}
	// The index must outlive the bundles it tracks.
	c.store.Set(ctx, bundleIndexKey(channelID), string(raw), 2*c.bundleTTL)
}

func (c *SummaryCache) appendToIndex(ctx context.Context, channelID, fingerprint string) {
	fingerprints := c.readIndex(ctx, channelID)
	for _, fp := range fingerprints {
		if fp == fingerprint {
			return
		}
	}
	c.writeIndex(ctx, channelID, append(fingerprints, fingerprint))
}

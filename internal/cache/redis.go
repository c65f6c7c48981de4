package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"tldw/internal/config"
)

// RedisStore backs the Store interface with Redis. Expiry is enforced by
// Redis itself via SETEX / SET NX EX.
type RedisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// Open connects to Redis using the configured URL or host/port settings.
// If the connection cannot be established it logs a warning and returns the
// no-op store instead; a missing cache must never stop the bot.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) Store {
	var opts *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("invalid REDIS_URL, caching disabled")
			return NewNoop()
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.RedisAddr(),
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
		}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", opts.Addr).
			Msg("redis unreachable, caching and rate limiting disabled")
		return NewNoop()
	}

	logger.Info().Str("addr", opts.Addr).Msg("connected to redis")
	return &RedisStore{client: client, logger: logger}
}

// NewRedis wraps an existing client. Used by tests running against a local
// Redis and by the CLI cache commands.
func NewRedis(client *redis.Client, logger zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("redis get failed")
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("redis set failed")
	}
}

func (s *RedisStore) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) bool {
	created, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("redis setnx failed")
		// Fail open: a broken store must not block commands.
		return true
	}
	return created
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("redis del failed")
	}
}

func (s *RedisStore) Clear(ctx context.Context) {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		s.logger.Debug().Err(err).Msg("redis flushdb failed")
	}
}

func (s *RedisStore) Keys(ctx context.Context, pattern string) ([]string, bool) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.Debug().Err(err).Str("pattern", pattern).Msg("redis scan failed")
		return nil, false
	}
	return keys, true
}

func (s *RedisStore) Mode() string { return "redis" }

// Close releases the underlying connection.
func (s *RedisStore) Close() error { return s.client.Close() }

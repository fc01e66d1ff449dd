// Package leaderboard is the Redis-backed score-type leaderboards: one
// sorted set per score type, members keyed by the player's "id/name" string.
// The core only ever increments; ranking is read back for API responses.
package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/warzonemc/mars/internal/model"
)

const keyPrefix = "mars:lb"

// Config holds Redis connection settings.
type Config struct {
	URL          string
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for a local Redis.
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

// Leaderboard tracks per-score-type rankings in Redis.
type Leaderboard struct {
	client *redis.Client
	logger *slog.Logger
}

// New connects to Redis and verifies the connection, failing fast if it is
// unreachable.
func New(cfg Config, logger *slog.Logger) (*Leaderboard, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not reach redis, is it running: %w", err)
	}

	return &Leaderboard{client: client, logger: logger}, nil
}

// NewWithClient wraps an existing client (for testing).
func NewWithClient(client *redis.Client, logger *slog.Logger) *Leaderboard {
	return &Leaderboard{client: client, logger: logger}
}

// Close closes the Redis connection.
func (l *Leaderboard) Close() error {
	return l.client.Close()
}

// Ping verifies the Redis connection.
func (l *Leaderboard) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func scoreKey(score model.ScoreType) string {
	return fmt.Sprintf("%s:%s", keyPrefix, score)
}

// Increment adds amount to the member's entry on the score type's
// leaderboard. Best-effort: failure is logged and dropped, never propagated.
func (l *Leaderboard) Increment(ctx context.Context, score model.ScoreType, member string, amount uint32) {
	err := l.client.ZIncrBy(ctx, scoreKey(score), float64(amount), member).Err()
	if err != nil {
		l.logger.Warn("leaderboard increment failed",
			slog.String("score", string(score)),
			slog.String("member", member),
			slog.String("error", err.Error()))
	}
}

// Set overwrites the member's entry on the score type's leaderboard; used
// when seeding leaderboards from player statistics. Best-effort.
func (l *Leaderboard) Set(ctx context.Context, score model.ScoreType, member string, value uint32) {
	err := l.client.ZAdd(ctx, scoreKey(score), redis.Z{
		Score:  float64(value),
		Member: member,
	}).Err()
	if err != nil {
		l.logger.Warn("leaderboard set failed",
			slog.String("score", string(score)),
			slog.String("member", member),
			slog.String("error", err.Error()))
	}
}

// Entry is one ranked leaderboard line.
type Entry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score uint64 `json:"score"`
}

// Top returns the highest n entries for the score type, best first.
func (l *Leaderboard) Top(ctx context.Context, score model.ScoreType, n int64) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	ranked, err := l.client.ZRevRangeWithScores(ctx, scoreKey(score), 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard %q: %w", score, err)
	}

	entries := make([]Entry, 0, len(ranked))
	for _, z := range ranked {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, name, _ := strings.Cut(member, "/")
		entries = append(entries, Entry{
			ID:    id,
			Name:  name,
			Score: uint64(z.Score),
		})
	}
	return entries, nil
}

// Package identity resolves alternate accounts: player identities suspected
// to belong to the same real user, inferred via shared IP history.
package identity

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/warzonemc/mars/internal/model"
)

// PlayerSource looks up the players ever observed joining from an IP.
type PlayerSource interface {
	PlayersForIP(ctx context.Context, ip string) ([]model.Player, error)
}

// DefaultConcurrency caps in-flight per-IP lookups for a single resolution.
// Without a cap a player with a pathologically large IP history would fan
// out one lookup per IP.
const DefaultConcurrency = 8

// Service fans per-IP lookups out against a PlayerSource and merges the
// results into a deduplicated alt list.
type Service struct {
	source      PlayerSource
	concurrency int64
	logger      *slog.Logger
}

// New creates the resolution service. A non-positive concurrency falls back
// to DefaultConcurrency.
func New(source PlayerSource, concurrency int64, logger *slog.Logger) *Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Service{
		source:      source,
		concurrency: concurrency,
		logger:      logger,
	}
}

// AltsForPlayer looks up every identity associated with each of the player's
// historical IPs, in parallel bounded by the configured concurrency, and
// returns them flattened in IP order and deduplicated by id, first seen
// wins. The queried player is not filtered out: if their own id appears in
// an IP's identity set they appear in the result. A failed per-IP lookup
// contributes nothing rather than failing the resolution.
func (s *Service) AltsForPlayer(ctx context.Context, player *model.Player) []model.Player {
	results := make([][]model.Player, len(player.IPs))
	sem := semaphore.NewWeighted(s.concurrency)

	var wg sync.WaitGroup
	for i, ip := range player.IPs {
		wg.Add(1)
		go func(i int, ip string) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)

			players, err := s.source.PlayersForIP(ctx, ip)
			if err != nil {
				s.logger.Warn("alt lookup failed for ip",
					slog.String("player", player.ID),
					slog.String("error", err.Error()))
				return
			}
			results[i] = players
		}(i, ip)
	}
	wg.Wait()

	seen := make(map[string]struct{})
	var alts []model.Player
	for _, batch := range results {
		for _, alt := range batch {
			if _, ok := seen[alt.ID]; ok {
				continue
			}
			seen[alt.ID] = struct{}{}
			alts = append(alts, alt)
		}
	}
	return alts
}

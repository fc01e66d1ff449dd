package leaderboard

import (
	"context"
	"log/slog"

	"github.com/warzonemc/mars/internal/model"
)

// PlayerLister enumerates every stored player for a seeding pass.
type PlayerLister interface {
	Players(ctx context.Context) []model.Player
}

// Seed rebuilds every score-type leaderboard from the stored player stats,
// overwriting each member's entry with the extracted score. Run at startup
// so rankings survive a Redis flush; increments keep them current after
// that.
func (l *Leaderboard) Seed(ctx context.Context, source PlayerLister) {
	players := source.Players(ctx)
	for i := range players {
		member := players[i].IDName()
		for _, score := range model.ScoreTypes {
			l.Set(ctx, score, member, players[i].Stats.Score(score))
		}
	}
	l.logger.Info("seeded leaderboards",
		slog.Int("players", len(players)),
		slog.Int("scoreTypes", len(model.ScoreTypes)))
}

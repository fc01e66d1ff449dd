package response

import (
	"github.com/warzonemc/mars/internal/leaderboard"
	"github.com/warzonemc/mars/internal/model"
)

// HealthResponse reports store liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// AltsResponse lists a player's suspected alternate accounts.
type AltsResponse struct {
	Alts []*model.Player `json:"alts"`
}

// PunishmentsResponse lists punishments issued against a player.
type PunishmentsResponse struct {
	Punishments []model.Punishment `json:"punishments"`
}

// LeaderboardResponse is a ranked slice of one score type's leaderboard.
type LeaderboardResponse struct {
	Score   model.ScoreType     `json:"score"`
	Entries []leaderboard.Entry `json:"entries"`
}

// DeleteResponse reports the outcome of a delete.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/warzonemc/mars/internal/api/apierr"
	"github.com/warzonemc/mars/internal/api/response"
	"github.com/warzonemc/mars/internal/leaderboard"
	"github.com/warzonemc/mars/internal/model"
)

const defaultLeaderboardSize = 10

// LeaderboardHandler handles leaderboard read endpoints
type LeaderboardHandler struct {
	leaderboard *leaderboard.Leaderboard
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(lb *leaderboard.Leaderboard) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: lb}
}

// Top handles GET /api/v1/leaderboards/{score}?limit=n
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	score, ok := model.ParseScoreType(mux.Vars(r)["score"])
	if !ok {
		apierr.WriteError(w, model.ErrUnknownScoreType)
		return
	}

	limit := int64(defaultLeaderboardSize)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboard.Top(r.Context(), score, limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if entries == nil {
		entries = []leaderboard.Entry{}
	}

	response.JSON(w, http.StatusOK, response.LeaderboardResponse{Score: score, Entries: entries})
}

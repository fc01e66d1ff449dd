package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/warzonemc/mars/internal/api/apierr"
	"github.com/warzonemc/mars/internal/api/response"
	"github.com/warzonemc/mars/internal/model"
	"github.com/warzonemc/mars/internal/services/identity"
)

// PlayerStore is the persistence surface the player endpoints need.
type PlayerStore interface {
	FindPlayer(ctx context.Context, target string) *model.Player
	DeletePlayer(ctx context.Context, id string) (int64, bool)
	PunishmentsFor(ctx context.Context, player *model.Player) []model.Punishment
	ActiveSession(ctx context.Context, player *model.Player) *model.Session
}

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	store    PlayerStore
	identity *identity.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(store PlayerStore, identity *identity.Service) *PlayerHandler {
	return &PlayerHandler{
		store:    store,
		identity: identity,
	}
}

// Get handles GET /api/v1/players/{target}; target is an id or a name.
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["target"]

	player := h.store.FindPlayer(r.Context(), target)
	if player == nil {
		apierr.WriteError(w, model.ErrPlayerNotFound)
		return
	}

	response.JSON(w, http.StatusOK, player.Sanitized())
}

// Alts handles GET /api/v1/players/{target}/alts
func (h *PlayerHandler) Alts(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["target"]

	player := h.store.FindPlayer(r.Context(), target)
	if player == nil {
		apierr.WriteError(w, model.ErrPlayerNotFound)
		return
	}

	alts := h.identity.AltsForPlayer(r.Context(), player)
	sanitized := make([]*model.Player, 0, len(alts))
	for i := range alts {
		sanitized = append(sanitized, alts[i].Sanitized())
	}

	response.JSON(w, http.StatusOK, response.AltsResponse{Alts: sanitized})
}

// Punishments handles GET /api/v1/players/{target}/punishments
func (h *PlayerHandler) Punishments(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["target"]

	player := h.store.FindPlayer(r.Context(), target)
	if player == nil {
		apierr.WriteError(w, model.ErrPlayerNotFound)
		return
	}

	punishments := h.store.PunishmentsFor(r.Context(), player)
	if punishments == nil {
		punishments = []model.Punishment{}
	}

	response.JSON(w, http.StatusOK, response.PunishmentsResponse{Punishments: punishments})
}

// Session handles GET /api/v1/players/{target}/session
func (h *PlayerHandler) Session(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["target"]

	player := h.store.FindPlayer(r.Context(), target)
	if player == nil {
		apierr.WriteError(w, model.ErrPlayerNotFound)
		return
	}

	session := h.store.ActiveSession(r.Context(), player)
	if session == nil {
		apierr.WriteError(w, model.ErrSessionNotFound)
		return
	}

	response.JSON(w, http.StatusOK, session)
}

// Delete handles DELETE /api/v1/players/{id}; admin action only.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, ok := h.store.DeletePlayer(r.Context(), id)
	if !ok {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}
	if deleted == 0 {
		apierr.WriteError(w, model.ErrPlayerNotFound)
		return
	}

	response.JSON(w, http.StatusOK, response.DeleteResponse{Deleted: deleted})
}

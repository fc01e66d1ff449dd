// Package memory is an in-memory implementation of the persistence surface,
// used by tests and local development in place of the document store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/warzonemc/mars/internal/model"
	"github.com/warzonemc/mars/internal/storage"
)

// Store keeps every record kind in maps guarded by a single mutex. It
// mirrors the semantics of the mongo layer: reads degrade to empty results,
// saves are whole-document replacements, last writer wins.
type Store struct {
	mu           sync.RWMutex
	players      map[string]model.Player
	sessions     map[string]model.Session
	punishments  map[string]model.Punishment
	ipIdentities map[string][]string
	metrics      storage.Metrics
}

// New creates an empty store.
func New() *Store {
	return &Store{
		players:      make(map[string]model.Player),
		sessions:     make(map[string]model.Session),
		punishments:  make(map[string]model.Punishment),
		ipIdentities: make(map[string][]string),
	}
}

// Ping always succeeds; the store lives in process.
func (s *Store) Ping(context.Context) error { return nil }

// Metrics exposes the swallowed-failure counters.
func (s *Store) Metrics() *storage.Metrics { return &s.metrics }

// FindPlayer resolves a player by id or name, case-insensitively.
func (s *Store) FindPlayer(_ context.Context, target string) *model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if player, ok := s.players[target]; ok {
		return &player
	}
	lower := strings.ToLower(target)
	for _, player := range s.players {
		if player.NameLower == lower {
			return &player
		}
	}
	return nil
}

// SavePlayer upserts the full player document.
func (s *Store) SavePlayer(_ context.Context, player *model.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = *player
}

// DeletePlayer removes a player by id and reports how many records matched.
func (s *Store) DeletePlayer(_ context.Context, id string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return 0, true
	}
	delete(s.players, id)
	return 1, true
}

// EnsurePlayerNameUniqueness renames every player other than keepID whose
// normalized name collides with name to a random placeholder.
func (s *Store) EnsurePlayerNameUniqueness(_ context.Context, name, keepID string) {
	lower := strings.ToLower(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, player := range s.players {
		if id == keepID || player.NameLower != lower {
			continue
		}
		placeholder := model.PlaceholderName()
		player.Name = placeholder
		player.NameLower = strings.ToLower(placeholder)
		s.players[id] = player
	}
}

// InsertSession appends a session record.
func (s *Store) InsertSession(_ context.Context, session *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
}

// ActiveSession returns the player's session without an end timestamp.
func (s *Store) ActiveSession(_ context.Context, player *model.Player) *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		if session.Player.ID == player.ID && session.IsActive() {
			return &session
		}
	}
	return nil
}

// InsertPunishment appends a punishment record.
func (s *Store) InsertPunishment(_ context.Context, punishment *model.Punishment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.punishments[punishment.ID] = *punishment
}

// PunishmentsFor returns every punishment ever issued against the player.
func (s *Store) PunishmentsFor(_ context.Context, player *model.Player) []model.Punishment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Punishment
	for _, punishment := range s.punishments {
		if punishment.Target.ID == player.ID {
			out = append(out, punishment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt < out[j].IssuedAt })
	return out
}

// ActivePunishmentsFor returns the player's currently-active punishments in
// issue order.
func (s *Store) ActivePunishmentsFor(ctx context.Context, player *model.Player) []model.Punishment {
	punishments := s.PunishmentsFor(ctx, player)
	active := punishments[:0]
	for i := range punishments {
		if punishments[i].IsActive() {
			active = append(active, punishments[i])
		}
	}
	return active
}

// RecordIPIdentity extends the ip join table with the player.
func (s *Store) RecordIPIdentity(_ context.Context, playerID, ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.ipIdentities[ip] {
		if id == playerID {
			return
		}
	}
	s.ipIdentities[ip] = append(s.ipIdentities[ip], playerID)
}

// PlayersForIP resolves the players ever observed joining from the IP.
func (s *Store) PlayersForIP(_ context.Context, ip string) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.ipIdentities[ip]
	out := make([]model.Player, 0, len(ids))
	for _, id := range ids {
		if player, ok := s.players[id]; ok {
			out = append(out, player)
		}
	}
	return out, nil
}

// Players returns every stored player; order is unspecified.
func (s *Store) Players(_ context.Context) []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, 0, len(s.players))
	for _, player := range s.players {
		out = append(out, player)
	}
	return out
}

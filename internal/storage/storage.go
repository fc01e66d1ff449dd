// Package storage defines the identity contract persisted records satisfy to
// use the generic persistence layer, and the metrics surface that makes
// best-effort failure handling observable.
package storage

import (
	"context"

	"github.com/warzonemc/mars/internal/model"
)

// Document is implemented by every persisted record: a unique identifier,
// stable for the record's lifetime, used as the primary key.
type Document interface {
	DocumentID() string
}

// CollectionOwner binds a record kind to its backing collection. The binding
// is fixed at build time; collection names are lowercase, singular, and part
// of the on-disk contract.
type CollectionOwner interface {
	Document
	CollectionName() string
}

// Named is implemented by name-bearing records that support case-insensitive
// secondary lookup through their normalized lowercase name.
type Named interface {
	Document
	NormalizedName() string
}

// Store is the persistence surface shared by the database-backed and
// in-memory backends.
type Store interface {
	Ping(ctx context.Context) error
	Metrics() *Metrics

	Players(ctx context.Context) []model.Player
	FindPlayer(ctx context.Context, target string) *model.Player
	SavePlayer(ctx context.Context, player *model.Player)
	DeletePlayer(ctx context.Context, id string) (int64, bool)
	EnsurePlayerNameUniqueness(ctx context.Context, name, keepID string)

	ActiveSession(ctx context.Context, player *model.Player) *model.Session

	PunishmentsFor(ctx context.Context, player *model.Player) []model.Punishment
	ActivePunishmentsFor(ctx context.Context, player *model.Player) []model.Punishment

	RecordIPIdentity(ctx context.Context, playerID, ip string)
	PlayersForIP(ctx context.Context, ip string) ([]model.Player, error)
}

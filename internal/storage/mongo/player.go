package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warzonemc/mars/internal/model"
	"github.com/warzonemc/mars/internal/storage"
)

// FindPlayer resolves a player by id or name, case-insensitively.
func (d *Database) FindPlayer(ctx context.Context, target string) *model.Player {
	return FindByIDOrName[model.Player](ctx, d, target)
}

// SavePlayer upserts the full player document.
func (d *Database) SavePlayer(ctx context.Context, player *model.Player) {
	Save(ctx, d, *player)
}

// DeletePlayer removes a player by id; admin action only.
func (d *Database) DeletePlayer(ctx context.Context, id string) (int64, bool) {
	return DeleteByID[model.Player](ctx, d, id)
}

// EnsurePlayerNameUniqueness renames every player other than keepID whose
// normalized name collides with name to a random placeholder. Best-effort
// sweep: concurrent renames racing on the same name resolve last-write-wins.
func (d *Database) EnsurePlayerNameUniqueness(ctx context.Context, name, keepID string) {
	placeholder := model.PlaceholderName()
	filter := bson.M{"$and": bson.A{
		bson.M{"nameLower": strings.ToLower(name)},
		bson.M{"_id": bson.M{"$ne": keepID}},
	}}
	update := bson.M{"$set": bson.M{
		"name":      placeholder,
		"nameLower": strings.ToLower(placeholder),
	}}
	if _, err := d.PlayersColl.UpdateMany(ctx, filter, update); err != nil {
		d.metrics.WriteFailure()
		d.logger.Warn("name uniqueness sweep failed",
			slog.String("name", name),
			slog.String("error", err.Error()))
	}
}

// ActiveSession returns the player's session without an end timestamp, if
// one exists.
func (d *Database) ActiveSession(ctx context.Context, player *model.Player) *model.Session {
	return FindOneWhere[model.Session](ctx, d, bson.M{
		"endedAt":   nil,
		"player.id": player.ID,
	})
}

// SessionForPlayer returns the session with the given id only if it belongs
// to the player.
func (d *Database) SessionForPlayer(ctx context.Context, player *model.Player, id string) *model.Session {
	return FindOneWhere[model.Session](ctx, d, bson.M{
		"_id":       id,
		"player.id": player.ID,
	})
}

// FindOneWhere finds a single document of the kind matching the filter.
// Absence and query failure both yield nil.
func FindOneWhere[T storage.CollectionOwner](ctx context.Context, db *Database, filter bson.M) *T {
	return findOne[T](ctx, db, filter)
}

// PunishmentsFor returns every punishment ever issued against the player.
func (d *Database) PunishmentsFor(ctx context.Context, player *model.Player) []model.Punishment {
	cursor, err := d.Punishments.Find(ctx, bson.M{"target.id": player.ID})
	if err != nil {
		d.metrics.ReadFailure()
		d.logger.Warn("punishment lookup failed",
			slog.String("player", player.ID),
			slog.String("error", err.Error()))
		return nil
	}
	return drainCursor[model.Punishment](ctx, d, d.Punishments.Name(), cursor)
}

// ActivePunishmentsFor returns the player's currently-active punishments in
// issue order.
func (d *Database) ActivePunishmentsFor(ctx context.Context, player *model.Player) []model.Punishment {
	punishments := d.PunishmentsFor(ctx, player)
	active := punishments[:0]
	for i := range punishments {
		if punishments[i].IsActive() {
			active = append(active, punishments[i])
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].IssuedAt < active[j].IssuedAt
	})
	return active
}

// RecentMatches lists the most recently loaded matches, newest first.
func (d *Database) RecentMatches(ctx context.Context, limit int64) []model.Match {
	opts := options.Find().
		SetSort(bson.D{{Key: "loadedAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := d.Matches.Find(ctx, bson.D{}, opts)
	if err != nil {
		d.metrics.ReadFailure()
		d.logger.Warn("recent match lookup failed", slog.String("error", err.Error()))
		return nil
	}
	return drainCursor[model.Match](ctx, d, d.Matches.Name(), cursor)
}

// PlayersByRank lists the players holding the rank, as projections.
func (d *Database) PlayersByRank(ctx context.Context, rank *model.Rank) []model.SimplePlayer {
	cursor, err := d.PlayersColl.Find(ctx, bson.M{"rankIds": rank.ID})
	if err != nil {
		d.metrics.ReadFailure()
		d.logger.Warn("rank member lookup failed",
			slog.String("rank", rank.ID),
			slog.String("error", err.Error()))
		return nil
	}
	players := drainCursor[model.Player](ctx, d, d.PlayersColl.Name(), cursor)
	simple := make([]model.SimplePlayer, 0, len(players))
	for i := range players {
		simple = append(simple, players[i].Simple())
	}
	return simple
}

// PlayersForIP resolves the players ever observed joining from the IP via
// the ipidentity join table. Unlike the degrading reads, transport failure
// is returned so the alt-resolution fan-out can log which IP contributed
// nothing.
func (d *Database) PlayersForIP(ctx context.Context, ip string) ([]model.Player, error) {
	var identity model.IPIdentity
	err := d.IPIdentities.FindOne(ctx, bson.M{"_id": ip}).Decode(&identity)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		d.metrics.ReadFailure()
		return nil, fmt.Errorf("look up ip identity %q: %w", ip, err)
	}
	if len(identity.PlayerIDs) == 0 {
		return nil, nil
	}

	cursor, err := d.PlayersColl.Find(ctx, bson.M{"_id": bson.M{"$in": identity.PlayerIDs}})
	if err != nil {
		d.metrics.ReadFailure()
		return nil, fmt.Errorf("load players for ip %q: %w", ip, err)
	}
	return drainCursor[model.Player](ctx, d, d.PlayersColl.Name(), cursor), nil
}

// RecordIPIdentity extends the ip join table with the player, creating the
// identity on first sight of the IP. Called on every login; best-effort.
func (d *Database) RecordIPIdentity(ctx context.Context, playerID, ip string) {
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$addToSet": bson.M{"players": playerID}}
	if _, err := d.IPIdentities.UpdateOne(ctx, bson.M{"_id": ip}, update, opts); err != nil {
		d.metrics.WriteFailure()
		d.logger.Warn("ip identity update failed",
			slog.String("ip", ip),
			slog.String("error", err.Error()))
	}
}

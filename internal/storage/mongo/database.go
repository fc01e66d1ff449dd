// Package mongo is the MongoDB-backed persistence layer. Reads degrade to
// empty results on failure and best-effort writes are dropped; both paths
// log and count through storage.Metrics rather than returning errors.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warzonemc/mars/internal/model"
	"github.com/warzonemc/mars/internal/storage"
)

const databaseName = "mars-api"

// Timeouts applied to the shared connection pool. Pool exhaustion surfaces
// as operation failure after the timeout, not as indefinite blocking.
const connectTimeout = 5 * time.Second

// Config holds the storage connection settings.
type Config struct {
	URL         string
	MinPoolSize uint64
	MaxPoolSize uint64
}

// DefaultConfig returns sensible defaults for a local database.
func DefaultConfig() Config {
	return Config{
		URL:         "mongodb://localhost:27017",
		MinPoolSize: 4,
		MaxPoolSize: 16,
	}
}

// Database wraps the mongo database handle and the typed collections the
// domain queries run against.
type Database struct {
	client  *mongodriver.Client
	db      *mongodriver.Database
	logger  *slog.Logger
	metrics *storage.Metrics

	PlayersColl  *mongodriver.Collection
	Sessions     *mongodriver.Collection
	Punishments  *mongodriver.Collection
	Matches      *mongodriver.Collection
	Ranks        *mongodriver.Collection
	Tags         *mongodriver.Collection
	Levels       *mongodriver.Collection
	Achievements *mongodriver.Collection
	IPIdentities *mongodriver.Collection
}

// Connect opens the connection pool and verifies liveness with a ping,
// failing fast if the store is unreachable.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongodriver.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db := client.Database(databaseName)
	if err := ping(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("could not reach the database, is it running: %w", err)
	}

	logger.Info("connected to database", slog.String("database", databaseName))

	return &Database{
		client:       client,
		db:           db,
		logger:       logger,
		metrics:      &storage.Metrics{},
		PlayersColl:  db.Collection(model.Player{}.CollectionName()),
		Sessions:     db.Collection(model.Session{}.CollectionName()),
		Punishments:  db.Collection(model.Punishment{}.CollectionName()),
		Matches:      db.Collection(model.Match{}.CollectionName()),
		Ranks:        db.Collection(model.Rank{}.CollectionName()),
		Tags:         db.Collection(model.Tag{}.CollectionName()),
		Levels:       db.Collection(model.Level{}.CollectionName()),
		Achievements: db.Collection(model.Achievement{}.CollectionName()),
		IPIdentities: db.Collection(model.IPIdentity{}.CollectionName()),
	}, nil
}

func ping(ctx context.Context, db *mongodriver.Database) error {
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Ping performs the liveness round-trip against the store.
func (d *Database) Ping(ctx context.Context) error {
	return ping(ctx, d.db)
}

// Close releases the connection pool.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Metrics exposes the swallowed-failure counters.
func (d *Database) Metrics() *storage.Metrics {
	return d.metrics
}

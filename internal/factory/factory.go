// Package factory wires the application components together.
package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/warzonemc/mars/internal/events"
	"github.com/warzonemc/mars/internal/leaderboard"
	"github.com/warzonemc/mars/internal/model"
	"github.com/warzonemc/mars/internal/services/identity"
	"github.com/warzonemc/mars/internal/services/progression"
	"github.com/warzonemc/mars/internal/storage"
	"github.com/warzonemc/mars/internal/storage/memory"
	"github.com/warzonemc/mars/internal/storage/mongo"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeMongo  = "mongo"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// Leaderboard is nil when no Redis is configured; progression then
	// falls back to a no-op sink.
	Leaderboard *leaderboard.Leaderboard

	// Events
	Bus *events.Bus[progression.XPGainEvent]

	// Services
	ServerContext      *progression.StaticContext
	IdentityService    *identity.Service
	ProgressionService *progression.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "mongo")
	// If empty, defaults to "memory"
	StorageType string
	// MongoConfig holds database connection settings (required if
	// StorageType is "mongo")
	MongoConfig *mongo.Config
	// RedisConfig holds leaderboard connection settings (optional)
	// If nil, no leaderboard is wired
	RedisConfig *leaderboard.Config
	// UseExponentialXP selects the leveling formula for the network
	UseExponentialXP bool
	// AltLookupConcurrency caps in-flight per-IP lookups; zero means the
	// identity default
	AltLookupConcurrency int64
	// Curve adjusts raw xp awards by level (optional)
	// If nil, awards pass through unadjusted
	Curve progression.GainCurve
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeMongo:
		if cfg.MongoConfig == nil {
			return nil, errors.New("MongoConfig required when StorageType is mongo")
		}
		db, err := mongo.Connect(ctx, *cfg.MongoConfig, logger)
		if err != nil {
			return nil, err
		}
		store = db
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'mongo'")
	}

	var lb *leaderboard.Leaderboard
	if cfg.RedisConfig != nil {
		var err error
		lb, err = leaderboard.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
	}

	return newWithDependencies(store, lb, cfg, logger), nil
}

// newWithDependencies creates an App with the given backends (useful for testing)
func newWithDependencies(store storage.Store, lb *leaderboard.Leaderboard, cfg Config, logger *slog.Logger) *App {
	bus := events.NewBus[progression.XPGainEvent]()

	var sink progression.Leaderboard = noopLeaderboard{}
	if lb != nil {
		sink = lb
	}

	serverCtx := progression.NewStaticContext(cfg.UseExponentialXP)
	identityService := identity.New(store, cfg.AltLookupConcurrency, logger)
	progressionService := progression.New(sink, progression.DispatcherFunc(
		func(_ context.Context, event progression.XPGainEvent) {
			bus.Publish(event)
		},
	), cfg.Curve, logger)

	return &App{
		Store:              store,
		Leaderboard:        lb,
		Bus:                bus,
		ServerContext:      serverCtx,
		IdentityService:    identityService,
		ProgressionService: progressionService,
	}
}

// Close releases the backend connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Leaderboard != nil {
		if err := a.Leaderboard.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if db, ok := a.Store.(*mongo.Database); ok {
		if err := db.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// noopLeaderboard drops increments when no Redis is configured.
type noopLeaderboard struct{}

func (noopLeaderboard) Increment(context.Context, model.ScoreType, string, uint32) {}

package mongo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warzonemc/mars/internal/storage"
)

// collectionFor resolves the backing collection of a record kind from its
// build-time binding.
func collectionFor[T storage.CollectionOwner](db *Database) *mongodriver.Collection {
	var zero T
	return db.db.Collection(zero.CollectionName())
}

// GetAll returns every document of the kind. Read failures degrade to an
// empty result; callers must tolerate that silently.
func GetAll[T storage.CollectionOwner](ctx context.Context, db *Database) []T {
	coll := collectionFor[T](db)
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		db.metrics.ReadFailure()
		db.logger.Warn("error retrieving documents",
			slog.String("collection", coll.Name()),
			slog.String("error", err.Error()))
		return nil
	}
	return drainCursor[T](ctx, db, coll.Name(), cursor)
}

// drainCursor consumes a cursor into an owning slice. Malformed documents
// are dropped and counted so one bad document never fails the batch.
func drainCursor[T any](ctx context.Context, db *Database, collection string, cursor *mongodriver.Cursor) []T {
	defer func() { _ = cursor.Close(ctx) }()

	var out []T
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			db.metrics.DroppedDocument()
			db.logger.Warn("dropping malformed document",
				slog.String("collection", collection),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, doc)
	}
	if err := cursor.Err(); err != nil {
		db.metrics.ReadFailure()
		db.logger.Warn("cursor ended with error",
			slog.String("collection", collection),
			slog.String("error", err.Error()))
	}
	return out
}

// FindByIDOrName finds the record whose normalized name matches text
// case-insensitively, or whose id equals text exactly.
func FindByIDOrName[T storage.CollectionOwner](ctx context.Context, db *Database, text string) *T {
	filter := bson.M{"$or": bson.A{
		bson.M{"nameLower": strings.ToLower(text)},
		bson.M{"_id": text},
	}}
	return findOne[T](ctx, db, filter)
}

// FindByName finds the record whose normalized name matches name
// case-insensitively.
func FindByName[T storage.CollectionOwner](ctx context.Context, db *Database, name string) *T {
	return findOne[T](ctx, db, bson.M{"nameLower": strings.ToLower(name)})
}

func findOne[T storage.CollectionOwner](ctx context.Context, db *Database, filter any) *T {
	coll := collectionFor[T](db)
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	switch {
	case err == nil:
		return &doc
	case errors.Is(err, mongodriver.ErrNoDocuments):
		return nil
	default:
		db.metrics.ReadFailure()
		db.logger.Warn("find failed",
			slog.String("collection", coll.Name()),
			slog.String("error", err.Error()))
		return nil
	}
}

// FindByID looks up a document by exact id in the given collection. Query
// failure degrades to absent.
func FindByID[T any](ctx context.Context, db *Database, coll *mongodriver.Collection, id string) *T {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	switch {
	case err == nil:
		return &doc
	case errors.Is(err, mongodriver.ErrNoDocuments):
		return nil
	default:
		db.metrics.ReadFailure()
		db.logger.Warn("find by id failed",
			slog.String("collection", coll.Name()),
			slog.String("id", id),
			slog.String("error", err.Error()))
		return nil
	}
}

// DeleteByID deletes at most one record by id. The second return is false
// when the delete outcome is unknown because of a transport failure.
func DeleteByID[T storage.CollectionOwner](ctx context.Context, db *Database, id string) (int64, bool) {
	coll := collectionFor[T](db)
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		db.metrics.WriteFailure()
		db.logger.Warn("delete failed",
			slog.String("collection", coll.Name()),
			slog.String("id", id),
			slog.String("error", err.Error()))
		return 0, false
	}
	return result.DeletedCount, true
}

// Save upserts the record: the document matched by its id is replaced with
// the record's full field set, creating it if absent. The write is a whole
// document view, so the last writer wins. Best-effort; failures are logged
// and dropped, at-most-once.
func Save[T storage.CollectionOwner](ctx context.Context, db *Database, record T) {
	coll := collectionFor[T](db)
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, bson.M{"_id": record.DocumentID()}, bson.M{"$set": record}, opts)
	if err != nil {
		db.metrics.WriteFailure()
		db.logger.Warn("save failed",
			slog.String("collection", coll.Name()),
			slog.String("id", record.DocumentID()),
			slog.String("error", err.Error()))
	}
}

// InsertOne inserts the record unconditionally; used for append-only record
// kinds where id collision is not expected. Best-effort like Save.
func InsertOne[T storage.CollectionOwner](ctx context.Context, db *Database, record T) {
	coll := collectionFor[T](db)
	if _, err := coll.InsertOne(ctx, record); err != nil {
		db.metrics.WriteFailure()
		db.logger.Warn("insert failed",
			slog.String("collection", coll.Name()),
			slog.String("id", record.DocumentID()),
			slog.String("error", err.Error()))
	}
}

// Package store is the document-store adapter used by the catalog and
// analytics domains. It exposes plain CRUD over one logical collection and
// translates between external opaque string identifiers and the engine's
// native ObjectID references. Referential integrity is NOT enforced here:
// a stored reference may dangle, and readers resolve dangling references
// to an empty joined set.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound means the id is well-formed but no record matched.
	ErrNotFound = errors.New("store: record not found")
	// ErrInvalidID means the external identifier is not a well-formed reference.
	ErrInvalidID = errors.New("store: malformed identifier")
	// ErrUnavailable wraps transport/connection failures. A write that fails
	// is always surfaced — never silently dropped.
	ErrUnavailable = errors.New("store: datastore unavailable")
)

// Store holds the process-wide document-store connection. It is initialised
// once at startup and shared by all in-flight requests; the underlying
// driver multiplexes over its own connection pool, so no mutex is needed.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the document store and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).
		SetConnectTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects from the document store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Collection returns the adapter for one logical collection.
func (s *Store) Collection(name string) *Collection {
	return &Collection{col: s.db.Collection(name), name: name}
}

// ParseID converts an external string identifier to the engine's native
// reference type. Returns ErrInvalidID for malformed input.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// ParseIDs converts a list of external identifiers, failing on the first
// malformed one.
func ParseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

// Collection provides create/read/update/delete/query over one collection.
type Collection struct {
	col  *mongo.Collection
	name string
}

// Insert stores doc and returns the generated external identifier.
func (c *Collection) Insert(ctx context.Context, doc interface{}) (string, error) {
	ack, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: insert %s: %v", ErrUnavailable, c.name, err)
	}

	oid, ok := ack.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: insert %s: unexpected id type %T", ErrUnavailable, c.name, ack.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID decodes the record with the given external id into dest.
func (c *Collection) FindByID(ctx context.Context, id string, dest interface{}) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	err = c.col.FindOne(ctx, bson.M{"_id": oid}).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: find %s: %v", ErrUnavailable, c.name, err)
	}
	return nil
}

// Find decodes every record matching filter into dest (a pointer to slice).
func (c *Collection) Find(ctx context.Context, filter bson.M, dest interface{}) error {
	cur, err := c.col.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("%w: query %s: %v", ErrUnavailable, c.name, err)
	}
	if err := cur.All(ctx, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, c.name, err)
	}
	return nil
}

// FindByIDs decodes the records whose id is in ids. Malformed ids are
// skipped rather than rejected: a dangling or corrupt reference resolves
// to an absent record on read, not an error.
func (c *Collection) FindByIDs(ctx context.Context, ids []string, dest interface{}) error {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return c.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, dest)
}

// UpdateByID applies a $set patch to the record with the given id and
// returns the matched count (0 when the id resolved nothing).
func (c *Collection) UpdateByID(ctx context.Context, id string, set bson.M) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	res, err := c.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("%w: update %s: %v", ErrUnavailable, c.name, err)
	}
	return res.MatchedCount, nil
}

// DeleteByID removes the record with the given id and returns the deleted
// count (0 when the id resolved nothing).
func (c *Collection) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%w: delete %s: %v", ErrUnavailable, c.name, err)
	}
	return res.DeletedCount, nil
}

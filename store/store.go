// Package store is the MongoDB-backed document store for users and jobs.
// Every exported operation issues exactly one driver call.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"jobbox/models"
)

const (
	UserCollection = "user"
	JobCollection  = "job"
)

// Store holds the shared client and the two collections.
type Store struct {
	client *mongo.Client
	users  *mongo.Collection
	jobs   *mongo.Collection
}

// Connect creates the process-wide client. The driver dials lazily, so a
// reachable server is only confirmed by Ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	return client, nil
}

// New binds a Store to the named database.
func New(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return NewWithCollections(client, db.Collection(UserCollection), db.Collection(JobCollection))
}

// NewWithCollections binds a Store to explicit collections.
func NewWithCollections(client *mongo.Client, users, jobs *mongo.Collection) *Store {
	return &Store{client: client, users: users, jobs: jobs}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// insertResult converts a driver result. An unacknowledged write is not an
// error for callers; it is reported through Acknowledged.
func insertResult(res *mongo.InsertOneResult, err error) (*models.InsertResult, error) {
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		log.Printf("WARN: insert was not acknowledged")
		return &models.InsertResult{Acknowledged: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// updateResult is insertResult for updates.
func updateResult(res *mongo.UpdateResult, err error) (*models.UpdateResult, error) {
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		log.Printf("WARN: update was not acknowledged")
		return &models.UpdateResult{Acknowledged: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

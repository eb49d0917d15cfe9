package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobbox/models"
)

// CreateUser inserts a user document as given.
func (s *Store) CreateUser(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		err = fmt.Errorf("failed to insert user: %w", err)
	}
	return insertResult(res, err)
}

// FindUserByEmail returns nil when no user has that email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (bson.M, error) {
	return findOne(ctx, s.users, byEmail(email))
}

// FindUserByID returns nil when the id matches nothing.
func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return findOne(ctx, s.users, byID(id))
}

// PushCandidateReply appends a candidate's reply to the employer threads
// keyed by the candidate id.
func (s *Store) PushCandidateReply(ctx context.Context, candidateID primitive.ObjectID, reply string) (*models.UpdateResult, error) {
	update, opts := pushThreadReply(candidateID, reply)
	res, err := s.users.UpdateOne(ctx, byThreadSender(candidateID), update, opts)
	return updateResult(res, wrap("candidate reply", err))
}

// PushEmployerText opens a new thread on the candidate's user document.
func (s *Store) PushEmployerText(ctx context.Context, candidateID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error) {
	res, err := s.users.UpdateOne(ctx, byID(candidateID), push("queries", thread))
	return updateResult(res, wrap("employer text", err))
}

func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", coll.Name(), err)
	}
	return doc, nil
}

func findMany(ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]bson.M, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", coll.Name(), err)
	}
	return docs, nil
}

func wrap(op string, err error) error {
	if err == nil || errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return err
	}
	return fmt.Errorf("failed to push %s: %w", op, err)
}

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobbox/models"
)

// ErrUnavailable marks every call on an Offline store.
var ErrUnavailable = errors.New("database unavailable")

// Offline stands in for Store when the client could not be created at
// startup. Every operation fails with the startup error.
type Offline struct {
	cause error
}

func NewOffline(cause error) *Offline {
	return &Offline{cause: cause}
}

func (o *Offline) fail() error {
	return fmt.Errorf("%w: %v", ErrUnavailable, o.cause)
}

func (o *Offline) Ping(ctx context.Context) error       { return o.fail() }
func (o *Offline) Disconnect(ctx context.Context) error { return nil }

func (o *Offline) CreateUser(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	return nil, o.fail()
}

func (o *Offline) FindUserByEmail(ctx context.Context, email string) (bson.M, error) {
	return nil, o.fail()
}

func (o *Offline) FindUserByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return nil, o.fail()
}

func (o *Offline) PushCandidateReply(ctx context.Context, candidateID primitive.ObjectID, reply string) (*models.UpdateResult, error) {
	return nil, o.fail()
}

func (o *Offline) PushEmployerText(ctx context.Context, candidateID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error) {
	return nil, o.fail()
}

func (o *Offline) CreateJob(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	return nil, o.fail()
}

func (o *Offline) FindJobs(ctx context.Context) ([]bson.M, error) {
	return nil, o.fail()
}

func (o *Offline) FindJobByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return nil, o.fail()
}

func (o *Offline) FindJobsByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]bson.M, error) {
	return nil, o.fail()
}

func (o *Offline) FindAppliedJobs(ctx context.Context, email string, order models.SortOrder) ([]bson.M, error) {
	return nil, o.fail()
}

func (o *Offline) PushApplicant(ctx context.Context, jobID primitive.ObjectID, applicant models.Applicant) (*models.UpdateResult, error) {
	return nil, o.fail()
}

func (o *Offline) PushApproval(ctx context.Context, jobID primitive.ObjectID, approval models.Approval) (*models.UpdateResult, error) {
	return nil, o.fail()
}

func (o *Offline) PushJobQuery(ctx context.Context, jobID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error) {
	return nil, o.fail()
}

func (o *Offline) PushJobReply(ctx context.Context, userID primitive.ObjectID, reply string) (*models.UpdateResult, error) {
	return nil, o.fail()
}

func (o *Offline) CloseJob(ctx context.Context, jobID primitive.ObjectID) (*models.UpdateResult, error) {
	return nil, o.fail()
}

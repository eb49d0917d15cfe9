package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobbox/models"
)

func (s *Store) CreateJob(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	res, err := s.jobs.InsertOne(ctx, doc)
	if err != nil {
		err = fmt.Errorf("failed to insert job: %w", err)
	}
	return insertResult(res, err)
}

// FindJobs returns every job. There is no paging.
func (s *Store) FindJobs(ctx context.Context) ([]bson.M, error) {
	return findMany(ctx, s.jobs, bson.M{})
}

// FindJobByID returns nil when the id matches nothing.
func (s *Store) FindJobByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return findOne(ctx, s.jobs, byID(id))
}

// FindJobsByEmployer matches employerInfo.id, which job documents store as
// the hex string of the employer's id.
func (s *Store) FindJobsByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]bson.M, error) {
	return findMany(ctx, s.jobs, byEmployer(employerID))
}

// FindAppliedJobs returns the jobs the email has applied to, without their
// applicant lists.
func (s *Store) FindAppliedJobs(ctx context.Context, email string, order models.SortOrder) ([]bson.M, error) {
	return findMany(ctx, s.jobs, byApplicantEmail(email), appliedJobsOptions(order))
}

func (s *Store) PushApplicant(ctx context.Context, jobID primitive.ObjectID, applicant models.Applicant) (*models.UpdateResult, error) {
	res, err := s.jobs.UpdateOne(ctx, byID(jobID), push("applicants", applicant))
	return updateResult(res, wrap("applicant", err))
}

func (s *Store) PushApproval(ctx context.Context, jobID primitive.ObjectID, approval models.Approval) (*models.UpdateResult, error) {
	res, err := s.jobs.UpdateOne(ctx, byID(jobID), push("approved", approval))
	return updateResult(res, wrap("approval", err))
}

func (s *Store) PushJobQuery(ctx context.Context, jobID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error) {
	res, err := s.jobs.UpdateOne(ctx, byID(jobID), push("queries", thread))
	return updateResult(res, wrap("job query", err))
}

// PushJobReply appends an employer reply to the sender's threads. The first
// job holding a thread from that sender is updated; no job id narrows it.
func (s *Store) PushJobReply(ctx context.Context, userID primitive.ObjectID, reply string) (*models.UpdateResult, error) {
	update, opts := pushThreadReply(userID, reply)
	res, err := s.jobs.UpdateOne(ctx, byThreadSender(userID), update, opts)
	return updateResult(res, wrap("job reply", err))
}

// CloseJob sets jobStatus to closed whatever it was before.
func (s *Store) CloseJob(ctx context.Context, jobID primitive.ObjectID) (*models.UpdateResult, error) {
	res, err := s.jobs.UpdateOne(ctx, byID(jobID), closeJob())
	if err != nil {
		err = fmt.Errorf("failed to close job: %w", err)
	}
	return updateResult(res, err)
}

package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobbox/models"
)

// mockStore is an in-memory Store that applies the same filters and
// array updates the MongoDB store sends.
type mockStore struct {
	mu    sync.Mutex
	users []bson.M
	jobs  []bson.M
	calls int
	err   error
	unack bool
}

func newMockStore() *mockStore {
	return &mockStore{}
}

// begin must be called with mu held.
func (m *mockStore) begin() error {
	m.calls++
	return m.err
}

func (m *mockStore) getCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockStore) insert(coll *[]bson.M, doc bson.M) *models.InsertResult {
	if m.unack {
		return &models.InsertResult{Acknowledged: false}
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	*coll = append(*coll, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: doc["_id"]}
}

func (m *mockStore) update(docs []bson.M, match func(bson.M) bool, apply func(bson.M) bool) *models.UpdateResult {
	if m.unack {
		return &models.UpdateResult{Acknowledged: false}
	}
	res := &models.UpdateResult{Acknowledged: true}
	for _, doc := range docs {
		if !match(doc) {
			continue
		}
		res.MatchedCount = 1
		if apply(doc) {
			res.ModifiedCount = 1
		}
		break
	}
	return res
}

func hasID(id primitive.ObjectID) func(bson.M) bool {
	return func(doc bson.M) bool { return doc["_id"] == id }
}

func hasThreadFrom(id primitive.ObjectID) func(bson.M) bool {
	return func(doc bson.M) bool {
		threads, _ := doc["queries"].([]interface{})
		for _, t := range threads {
			if t.(models.QueryThread).ID == id {
				return true
			}
		}
		return false
	}
}

func pushTo(field string, v interface{}) func(bson.M) bool {
	return func(doc bson.M) bool {
		arr, _ := doc[field].([]interface{})
		doc[field] = append(arr, v)
		return true
	}
}

// replyToThreads appends reply to every thread from sender.
func replyToThreads(sender primitive.ObjectID, reply string) func(bson.M) bool {
	return func(doc bson.M) bool {
		threads, _ := doc["queries"].([]interface{})
		for i, t := range threads {
			thread := t.(models.QueryThread)
			if thread.ID == sender {
				thread.Reply = append(append([]string{}, thread.Reply...), reply)
				threads[i] = thread
			}
		}
		return true
	}
}

func findOne(docs []bson.M, match func(bson.M) bool) bson.M {
	for _, doc := range docs {
		if match(doc) {
			return doc
		}
	}
	return nil
}

func (m *mockStore) CreateUser(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.insert(&m.users, doc), nil
}

func (m *mockStore) FindUserByEmail(ctx context.Context, email string) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return findOne(m.users, func(doc bson.M) bool { return doc["email"] == email }), nil
}

func (m *mockStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return findOne(m.users, hasID(id)), nil
}

func (m *mockStore) PushCandidateReply(ctx context.Context, candidateID primitive.ObjectID, reply string) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.update(m.users, hasThreadFrom(candidateID), replyToThreads(candidateID, reply)), nil
}

func (m *mockStore) PushEmployerText(ctx context.Context, candidateID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.update(m.users, hasID(candidateID), pushTo("queries", thread)), nil
}

func (m *mockStore) CreateJob(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.insert(&m.jobs, doc), nil
}

func (m *mockStore) FindJobs(ctx context.Context) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return append([]bson.M{}, m.jobs...), nil
}

func (m *mockStore) FindJobByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return findOne(m.jobs, hasID(id)), nil
}

func (m *mockStore) FindJobsByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	out := []bson.M{}
	for _, doc := range m.jobs {
		info, _ := doc["employerInfo"].(bson.M)
		if info["id"] == employerID.Hex() {
			out = append(out, doc)
		}
	}
	return out, nil
}

// FindAppliedJobs sorts the way MongoDB sorts on an array field: ascending
// by the earliest createdAt, descending by the latest.
func (m *mockStore) FindAppliedJobs(ctx context.Context, email string, order models.SortOrder) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	type hit struct {
		doc      bson.M
		min, max time.Time
	}
	var hits []hit
	for _, doc := range m.jobs {
		applicants, _ := doc["applicants"].([]interface{})
		var h hit
		matched := false
		for i, a := range applicants {
			applicant := a.(models.Applicant)
			if applicant.Email == email {
				matched = true
			}
			if i == 0 || applicant.CreatedAt.Before(h.min) {
				h.min = applicant.CreatedAt
			}
			if i == 0 || applicant.CreatedAt.After(h.max) {
				h.max = applicant.CreatedAt
			}
		}
		if !matched {
			continue
		}
		h.doc = bson.M{}
		for k, v := range doc {
			if k != "applicants" {
				h.doc[k] = v
			}
		}
		hits = append(hits, h)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if order == models.LastApplied {
			return hits[i].max.After(hits[j].max)
		}
		return hits[i].min.Before(hits[j].min)
	})

	out := []bson.M{}
	for _, h := range hits {
		out = append(out, h.doc)
	}
	return out, nil
}

func (m *mockStore) PushApplicant(ctx context.Context, jobID primitive.ObjectID, applicant models.Applicant) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.update(m.jobs, hasID(jobID), pushTo("applicants", applicant)), nil
}

func (m *mockStore) PushApproval(ctx context.Context, jobID primitive.ObjectID, approval models.Approval) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.update(m.jobs, hasID(jobID), pushTo("approved", approval)), nil
}

func (m *mockStore) PushJobQuery(ctx context.Context, jobID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.update(m.jobs, hasID(jobID), pushTo("queries", thread)), nil
}

func (m *mockStore) PushJobReply(ctx context.Context, userID primitive.ObjectID, reply string) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.update(m.jobs, hasThreadFrom(userID), replyToThreads(userID, reply)), nil
}

func (m *mockStore) CloseJob(ctx context.Context, jobID primitive.ObjectID) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.update(m.jobs, hasID(jobID), func(doc bson.M) bool {
		changed := doc["jobStatus"] != models.JobStatusClosed
		doc["jobStatus"] = models.JobStatusClosed
		return changed
	}), nil
}

var _ Store = (*mockStore)(nil)

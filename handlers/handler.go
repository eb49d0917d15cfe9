package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobbox/models"
)

// MaxBodySize caps every request body.
const MaxBodySize = 1 << 20

// msgDatabaseError is the error text sent for every store failure.
const msgDatabaseError = "database error"

var errBadRequest = errors.New("bad request")

// Store is the document store the handlers delegate to. Find-one methods
// return a nil document when nothing matches.
type Store interface {
	CreateUser(ctx context.Context, doc bson.M) (*models.InsertResult, error)
	FindUserByEmail(ctx context.Context, email string) (bson.M, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	PushCandidateReply(ctx context.Context, candidateID primitive.ObjectID, reply string) (*models.UpdateResult, error)
	PushEmployerText(ctx context.Context, candidateID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error)

	CreateJob(ctx context.Context, doc bson.M) (*models.InsertResult, error)
	FindJobs(ctx context.Context) ([]bson.M, error)
	FindJobByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	FindJobsByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]bson.M, error)
	FindAppliedJobs(ctx context.Context, email string, order models.SortOrder) ([]bson.M, error)
	PushApplicant(ctx context.Context, jobID primitive.ObjectID, applicant models.Applicant) (*models.UpdateResult, error)
	PushApproval(ctx context.Context, jobID primitive.ObjectID, approval models.Approval) (*models.UpdateResult, error)
	PushJobQuery(ctx context.Context, jobID primitive.ObjectID, thread models.QueryThread) (*models.UpdateResult, error)
	PushJobReply(ctx context.Context, userID primitive.ObjectID, reply string) (*models.UpdateResult, error)
	CloseJob(ctx context.Context, jobID primitive.ObjectID) (*models.UpdateResult, error)
}

// Handler serves the job board API on top of a shared Store.
type Handler struct {
	store   Store
	timeout time.Duration
	now     func() time.Time
}

// NewHandler creates a handler set. timeout bounds each store call; zero
// leaves the request context as is.
func NewHandler(store Store, timeout time.Duration) *Handler {
	return &Handler{
		store:   store,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

// HandleHome answers the root route.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello World!"))
}

func parseID(field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s %q is not a valid id", errBadRequest, field, hex)
	}
	return id, nil
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

// decodeDocument reads an opaque document as relaxed extended JSON, so
// $oid and $date values are stored with their native types.
func decodeDocument(w http.ResponseWriter, r *http.Request) (bson.M, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", errBadRequest, err)
	}
	var doc bson.M
	if err := bson.UnmarshalExtJSON(body, false, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON document: %v", errBadRequest, err)
	}
	return doc, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: encode response: %v", err)
	}
}

func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, models.Envelope{Status: true, Data: data})
}

func writeNegative(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, models.Failure{Status: false})
}

// writeError maps request errors to 400 and everything else to 500. Store
// errors are only logged; the client gets a fixed message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadRequest) {
		log.Printf("WARN: [%s] %s %s: %v", RequestID(r.Context()), r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusBadRequest, models.Failure{Status: false, Error: err.Error()})
		return
	}
	log.Printf("ERROR: [%s] %s %s: %v", RequestID(r.Context()), r.Method, r.URL.Path, err)
	writeJSON(w, http.StatusInternalServerError, models.Failure{Status: false, Error: msgDatabaseError})
}

// writeUpdate reports an acknowledged update as success, whether or not a
// document matched.
func writeUpdate(w http.ResponseWriter, r *http.Request, res *models.UpdateResult, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !res.Acknowledged {
		writeNegative(w)
		return
	}
	writeData(w, res)
}

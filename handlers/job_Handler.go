package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"jobbox/models"
)

type applyRequest struct {
	UserID string `json:"userId"`
	JobID  string `json:"jobId"`
	Email  string `json:"email"`
}

type approveRequest struct {
	JobID          string `json:"jobId"`
	CandidateEmail string `json:"candidateEmail"`
}

type queryRequest struct {
	UserID   string `json:"userId"`
	JobID    string `json:"jobId"`
	Email    string `json:"email"`
	Question string `json:"question"`
}

type replyRequest struct {
	UserID string `json:"userId"`
	Reply  string `json:"reply"`
}

// HandleCreateJob inserts the request body as a new job document.
func (h *Handler) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.store.CreateJob(ctx, doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !res.Acknowledged {
		writeNegative(w)
		return
	}

	log.Printf("INFO: [%s] created job %v", RequestID(r.Context()), res.InsertedID)
	writeData(w, res)
}

func (h *Handler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	jobs, err := h.store.FindJobs(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, jobs)
}

// HandleGetJob answers data:null for an unknown id.
func (h *Handler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("id", mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	job, err := h.store.FindJobByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, job)
}

func (h *Handler) HandleEmployerJobs(w http.ResponseWriter, r *http.Request) {
	employerID, err := parseID("employerID", mux.Vars(r)["employerID"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	jobs, err := h.store.FindJobsByEmployer(ctx, employerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, jobs)
}

// HandleAppliedJobs lists the jobs an email applied to, ordered by
// ?sort=firstApplied (default) or ?sort=lastApplied.
func (h *Handler) HandleAppliedJobs(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	order := models.ParseSortOrder(r.URL.Query().Get("sort"))

	ctx, cancel := h.requestContext(r)
	defer cancel()

	jobs, err := h.store.FindAppliedJobs(ctx, email, order)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, jobs)
}

// HandleApply records an application. Repeated applications are all kept.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	jobID, err := parseID("jobId", req.JobID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := parseID("userId", req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	applicant := models.Applicant{ID: userID, Email: req.Email, CreatedAt: h.now()}
	res, err := h.store.PushApplicant(ctx, jobID, applicant)
	writeUpdate(w, r, res, err)
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	jobID, err := parseID("jobId", req.JobID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.store.PushApproval(ctx, jobID, models.NewApproval(req.CandidateEmail))
	writeUpdate(w, r, res, err)
}

// HandleQuery opens a candidate question thread on a job.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	jobID, err := parseID("jobId", req.JobID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := parseID("userId", req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.store.PushJobQuery(ctx, jobID, models.NewJobQuery(userID, req.Email, req.Question))
	writeUpdate(w, r, res, err)
}

// HandleReply appends an employer reply to the sender's job threads.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := parseID("userId", req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.store.PushJobReply(ctx, userID, req.Reply)
	writeUpdate(w, r, res, err)
}

// HandleCloseJob marks a job closed. It always answers status:true once
// the store accepted the call.
func (h *Handler) HandleCloseJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseID("jobId", mux.Vars(r)["jobId"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.store.CloseJob(ctx, jobID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, res)
}

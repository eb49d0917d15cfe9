package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"jobbox/models"
)

type candidateReplyRequest struct {
	CandidateID string `json:"candidateId"`
	Reply       string `json:"reply"`
}

type employerTextRequest struct {
	CandidateID   string `json:"candidateId"`
	EmployerID    string `json:"employerId"`
	EmployerEmail string `json:"employerEmail"`
	EmployerText  string `json:"employerText"`
}

// HandleCreateUser inserts the request body as a new user document.
func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.store.CreateUser(ctx, doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !res.Acknowledged {
		writeNegative(w)
		return
	}

	log.Printf("INFO: [%s] created user %v", RequestID(r.Context()), res.InsertedID)
	writeData(w, res)
}

// HandleGetUser looks a user up by email. A miss answers {"status":false}.
func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.store.FindUserByEmail(ctx, email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if found, _ := user["email"].(string); found == "" {
		writeNegative(w)
		return
	}
	writeData(w, user)
}

// HandleCandidateDetails looks a user up by id. A miss answers data:null.
func (h *Handler) HandleCandidateDetails(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("candidateId", mux.Vars(r)["candidateId"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.store.FindUserByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, user)
}

// HandleCandidateReply appends a candidate's reply to the employer threads
// on their own user document.
func (h *Handler) HandleCandidateReply(w http.ResponseWriter, r *http.Request) {
	var req candidateReplyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	candidateID, err := parseID("candidateId", req.CandidateID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.store.PushCandidateReply(ctx, candidateID, req.Reply)
	writeUpdate(w, r, res, err)
}

// HandleEmployerText opens an employer thread on a candidate.
func (h *Handler) HandleEmployerText(w http.ResponseWriter, r *http.Request) {
	var req employerTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	candidateID, err := parseID("candidateId", req.CandidateID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	thread := models.NewEmployerText(candidateID, req.EmployerID, req.EmployerEmail, req.EmployerText)
	res, err := h.store.PushEmployerText(ctx, candidateID, thread)
	writeUpdate(w, r, res, err)
}

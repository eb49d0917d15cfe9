package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.HandleHome).Methods("GET")

	// Users
	router.HandleFunc("/user", h.HandleCreateUser).Methods("POST")
	router.HandleFunc("/user/{email}", h.HandleGetUser).Methods("GET")
	router.HandleFunc("/candidate-details/{candidateId}", h.HandleCandidateDetails).Methods("GET")
	router.HandleFunc("/candidate-reply", h.HandleCandidateReply).Methods("PATCH")
	router.HandleFunc("/employer-text", h.HandleEmployerText).Methods("PATCH")

	// Jobs
	router.HandleFunc("/jobs", h.HandleListJobs).Methods("GET")
	router.HandleFunc("/job", h.HandleCreateJob).Methods("POST")
	router.HandleFunc("/job/{id}", h.HandleGetJob).Methods("GET")
	router.HandleFunc("/job/employer-jobs/{employerID}", h.HandleEmployerJobs).Methods("GET")
	router.HandleFunc("/close-job/{jobId}", h.HandleCloseJob).Methods("PATCH")

	// Applications and messages
	router.HandleFunc("/apply", h.HandleApply).Methods("PATCH")
	router.HandleFunc("/approve", h.HandleApprove).Methods("PATCH")
	router.HandleFunc("/applied-jobs/{email}", h.HandleAppliedJobs).Methods("GET")
	router.HandleFunc("/query", h.HandleQuery).Methods("PATCH")
	router.HandleFunc("/reply", h.HandleReply).Methods("PATCH")
}

// NewRouter builds the full route table with request id and logging
// middleware.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	router.Use(requestIDMiddleware)
	router.Use(requestLoggerMiddleware)

	router.NotFoundHandler = requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: [%s] No route found for %s %s", RequestID(r.Context()), r.Method, r.URL.Path)
		http.NotFound(w, r)
	}))
	return router
}

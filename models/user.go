package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// QueryThread is a message thread nested in a job or user document.
// Job threads carry Email and Question; user threads carry the employer fields.
type QueryThread struct {
	ID            primitive.ObjectID `json:"id" bson:"id"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	Question      string             `json:"question,omitempty" bson:"question,omitempty"`
	EmployerID    string             `json:"employerId,omitempty" bson:"employerId,omitempty"`
	EmployerEmail string             `json:"employerEmail,omitempty" bson:"employerEmail,omitempty"`
	EmployerText  string             `json:"employerText,omitempty" bson:"employerText,omitempty"`
	Reply         []string           `json:"reply" bson:"reply"`
}

// NewJobQuery starts a candidate question thread on a job.
func NewJobQuery(userID primitive.ObjectID, email, question string) QueryThread {
	return QueryThread{
		ID:       userID,
		Email:    email,
		Question: question,
		Reply:    []string{},
	}
}

// NewEmployerText starts an employer thread on a candidate's user document.
// The thread is keyed by the candidate id so candidate replies can find it.
func NewEmployerText(candidateID primitive.ObjectID, employerID, employerEmail, text string) QueryThread {
	return QueryThread{
		ID:            candidateID,
		EmployerID:    employerID,
		EmployerEmail: employerEmail,
		EmployerText:  text,
		Reply:         []string{},
	}
}

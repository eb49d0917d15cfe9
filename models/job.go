package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobStatusClosed is the only jobStatus value the service writes.
const JobStatusClosed = "closed"

// Applicant is appended to job.applicants on every application.
type Applicant struct {
	ID        primitive.ObjectID `json:"id" bson:"id"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Approval is appended to job.approved.
type Approval struct {
	Email    string `json:"email" bson:"email"`
	Approved bool   `json:"approved" bson:"approved"`
}

func NewApproval(email string) Approval {
	return Approval{Email: email, Approved: true}
}

// SortOrder orders applied jobs by application time.
type SortOrder int

const (
	FirstApplied SortOrder = 1
	LastApplied  SortOrder = -1
)

// ParseSortOrder maps the ?sort= query value. Unknown values sort ascending.
func ParseSortOrder(s string) SortOrder {
	if s == "lastApplied" {
		return LastApplied
	}
	return FirstApplied
}

package models

import "time"

// RequestStatus tracks a mentorship request through its lifecycle.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// MentorshipRequest is a student's ask to an alumni mentor. Both sides are
// snapshotted by name so the record renders without directory lookups.
type MentorshipRequest struct {
	ID                string        `json:"id"`
	StudentID         string        `json:"studentId"`
	StudentName       string        `json:"studentName"`
	StudentDepartment string        `json:"studentDepartment"`
	StudentBatch      string        `json:"studentBatch"`
	AlumniID          string        `json:"alumniId"`
	AlumniName        string        `json:"alumniName"`
	Subject           string        `json:"subject"`
	Message           string        `json:"message"`
	Status            RequestStatus `json:"status"` // pending, accepted, declined
	CreatedAt         time.Time     `json:"createdAt"`
	RespondedAt       *time.Time    `json:"respondedAt,omitempty"`
}

// MentorshipDraft carries the two sides and the ask.
type MentorshipDraft struct {
	Student User
	Mentor  User
	Subject string `validate:"required,min=3,max=120"`
	Message string `validate:"required,min=1,max=1000"`
}

package models

import "time"

// JobType is the employment kind of a posting.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobInternship JobType = "internship"
	JobContract   JobType = "contract"
)

// Job is a board posting scoped to a college.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Type            JobType   `json:"type"` // full-time, part-time, internship, contract
	Salary          string    `json:"salary,omitempty"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	PostedBy        string    `json:"postedBy"`
	PostedAt        time.Time `json:"postedAt"`
	ApplicationLink string    `json:"applicationLink"`
}

// JobDraft defines the fields collected when posting a job.
type JobDraft struct {
	Title           string   `validate:"required,min=2,max=120"`
	Company         string   `validate:"required"`
	Location        string   `validate:"required"`
	Type            JobType  `validate:"required,oneof=full-time part-time internship contract"`
	Salary          string   `validate:"omitempty"`
	Description     string   `validate:"required"`
	Requirements    []string `validate:"omitempty,dive,required"`
	PostedBy        string   `validate:"required"`
	ApplicationLink string   `validate:"required,url"`
}

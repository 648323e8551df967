package models

import "time"

// EventType is the category of a community event.
type EventType string

const (
	EventWorkshop   EventType = "workshop"
	EventNetworking EventType = "networking"
	EventWebinar    EventType = "webinar"
	EventSocial     EventType = "social"
	EventCareer     EventType = "career"
)

// Event is a board entry scoped to a college. Attendees is a user-id set;
// RSVP flips membership the same way post likes do.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	Organizer    string    `json:"organizer"`
	Attendees    []string  `json:"attendees"`
	MaxAttendees int       `json:"maxAttendees,omitempty"`
	Type         EventType `json:"type"` // workshop, networking, webinar, social, career
	IsOnline     bool      `json:"isOnline"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EventDraft defines the fields collected when creating an event.
type EventDraft struct {
	Title        string    `validate:"required,min=2,max=120"`
	Description  string    `validate:"required"`
	Date         time.Time `validate:"required"`
	Time         string    `validate:"required"`
	Location     string    `validate:"required"`
	Organizer    string    `validate:"required"`
	MaxAttendees int       `validate:"omitempty,min=1"`
	Type         EventType `validate:"required,oneof=workshop networking webinar social career"`
	IsOnline     bool
}

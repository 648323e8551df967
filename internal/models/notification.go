package models

import "time"

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotificationMessage NotificationType = "message"
	NotificationRequest NotificationType = "request"
	NotificationEvent   NotificationType = "event"
	NotificationJob     NotificationType = "job"
	NotificationSystem  NotificationType = "system"
)

// UserRef is the snapshot of the user an event originated from.
type UserRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Notification is stored under the recipient's scope; the recipient id is
// implicit in the storage key.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"` // message, request, event, job, system
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	FromUser  *UserRef         `json:"fromUser,omitempty"`
	Data      map[string]any   `json:"data,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NotificationDraft is everything but the generated id and timestamp.
type NotificationDraft struct {
	Type     NotificationType
	Title    string
	Message  string
	FromUser *UserRef
	Data     map[string]any
}

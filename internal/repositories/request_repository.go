package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// RequestRepository keeps the mentorship request list.
type RequestRepository interface {
	Create(draft models.MentorshipDraft) (models.MentorshipRequest, error)
	Respond(id string, status models.RequestStatus) (*models.MentorshipRequest, error)
	ForStudent(studentID string) ([]models.MentorshipRequest, error)
	ForMentor(alumniID string) ([]models.MentorshipRequest, error)
}

type requestRepository struct {
	store         store.Store
	notifications NotificationRepository
	now           func() time.Time
}

func NewRequestRepository(s store.Store, notifications NotificationRepository) RequestRepository {
	return &requestRepository{store: s, notifications: notifications, now: time.Now}
}

func (r *requestRepository) list() ([]models.MentorshipRequest, error) {
	return store.Load[models.MentorshipRequest](r.store, store.RequestsKey)
}

// Create stores a pending request and notifies the mentor.
func (r *requestRepository) Create(draft models.MentorshipDraft) (models.MentorshipRequest, error) {
	requests, err := r.list()
	if err != nil {
		return models.MentorshipRequest{}, err
	}

	req := models.MentorshipRequest{
		ID:                uuid.NewString(),
		StudentID:         draft.Student.ID,
		StudentName:       draft.Student.Name,
		StudentDepartment: draft.Student.Department,
		StudentBatch:      draft.Student.Batch,
		AlumniID:          draft.Mentor.ID,
		AlumniName:        draft.Mentor.Name,
		Subject:           draft.Subject,
		Message:           draft.Message,
		Status:            models.RequestPending,
		CreatedAt:         r.now(),
	}

	requests = append([]models.MentorshipRequest{req}, requests...)
	if err := store.Save(r.store, store.RequestsKey, requests); err != nil {
		return models.MentorshipRequest{}, err
	}

	_, err = r.notifications.Append(req.AlumniID, models.NotificationDraft{
		Type:     models.NotificationRequest,
		Title:    "New Mentorship Request",
		Message:  fmt.Sprintf("%s requested mentorship: %s", req.StudentName, req.Subject),
		FromUser: draft.Student.Ref(),
		Data:     map[string]any{"requestId": req.ID},
	})
	if err != nil {
		return models.MentorshipRequest{}, err
	}
	return req, nil
}

// Respond moves a pending request to accepted or declined and notifies the
// student.
func (r *requestRepository) Respond(id string, status models.RequestStatus) (*models.MentorshipRequest, error) {
	if status != models.RequestAccepted && status != models.RequestDeclined {
		return nil, fmt.Errorf("invalid response status %q", status)
	}

	requests, err := r.list()
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID != id {
			continue
		}
		if requests[i].Status != models.RequestPending {
			return nil, fmt.Errorf("request already %s", requests[i].Status)
		}
		respondedAt := r.now()
		requests[i].Status = status
		requests[i].RespondedAt = &respondedAt
		if err := store.Save(r.store, store.RequestsKey, requests); err != nil {
			return nil, err
		}

		req := requests[i]
		_, err := r.notifications.Append(req.StudentID, models.NotificationDraft{
			Type:    models.NotificationSystem,
			Title:   "Mentorship Request Update",
			Message: fmt.Sprintf("%s %s your mentorship request", req.AlumniName, status),
			Data:    map[string]any{"requestId": req.ID},
		})
		if err != nil {
			return nil, err
		}
		return &requests[i], nil
	}
	return nil, ErrNotFound
}

func (r *requestRepository) ForStudent(studentID string) ([]models.MentorshipRequest, error) {
	return r.filter(func(req models.MentorshipRequest) bool { return req.StudentID == studentID })
}

func (r *requestRepository) ForMentor(alumniID string) ([]models.MentorshipRequest, error) {
	return r.filter(func(req models.MentorshipRequest) bool { return req.AlumniID == alumniID })
}

func (r *requestRepository) filter(keep func(models.MentorshipRequest) bool) ([]models.MentorshipRequest, error) {
	requests, err := r.list()
	if err != nil {
		return nil, err
	}
	out := make([]models.MentorshipRequest, 0, len(requests))
	for _, req := range requests {
		if keep(req) {
			out = append(out, req)
		}
	}
	return out, nil
}

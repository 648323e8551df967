package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// ErrEventFull is returned when an RSVP would exceed the attendee cap.
var ErrEventFull = errors.New("event is full")

// EventRepository keeps the per-college event board.
type EventRepository interface {
	List(college string) ([]models.Event, error)
	Create(college string, draft models.EventDraft) (models.Event, error)
	ToggleRSVP(college, eventID, userID string) (*models.Event, error)
}

type eventRepository struct {
	store store.Store
	now   func() time.Time
}

func NewEventRepository(s store.Store) EventRepository {
	return &eventRepository{store: s, now: time.Now}
}

func (r *eventRepository) List(college string) ([]models.Event, error) {
	return store.Load[models.Event](r.store, store.EventsKey(college))
}

func (r *eventRepository) Create(college string, draft models.EventDraft) (models.Event, error) {
	events, err := r.List(college)
	if err != nil {
		return models.Event{}, err
	}

	ev := models.Event{
		ID:           uuid.NewString(),
		Title:        draft.Title,
		Description:  draft.Description,
		Date:         draft.Date,
		Time:         draft.Time,
		Location:     draft.Location,
		Organizer:    draft.Organizer,
		Attendees:    []string{},
		MaxAttendees: draft.MaxAttendees,
		Type:         draft.Type,
		IsOnline:     draft.IsOnline,
		CreatedAt:    r.now(),
	}

	events = append([]models.Event{ev}, events...)
	if err := store.Save(r.store, store.EventsKey(college), events); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// ToggleRSVP flips the user's membership in the attendee set. Leaving is
// always allowed; joining fails once the cap is reached.
func (r *eventRepository) ToggleRSVP(college, eventID, userID string) (*models.Event, error) {
	events, err := r.List(college)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID != eventID {
			continue
		}
		ev := &events[i]
		joining := !containsID(ev.Attendees, userID)
		if joining && ev.MaxAttendees > 0 && len(ev.Attendees) >= ev.MaxAttendees {
			return nil, ErrEventFull
		}
		ev.Attendees = toggleMember(ev.Attendees, userID)
		if err := store.Save(r.store, store.EventsKey(college), events); err != nil {
			return nil, err
		}
		return ev, nil
	}
	return nil, ErrNotFound
}

// SplitByDate partitions events into upcoming and past relative to now.
// Pure; order preserved within each partition.
func SplitByDate(events []models.Event, now time.Time) (upcoming, past []models.Event) {
	upcoming = make([]models.Event, 0, len(events))
	past = make([]models.Event, 0)
	for _, ev := range events {
		if ev.Date.Before(now) {
			past = append(past, ev)
		} else {
			upcoming = append(upcoming, ev)
		}
	}
	return upcoming, past
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

package repositories

import (
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// NotificationRepository keeps the per-user notification lists.
type NotificationRepository interface {
	List(userID string) ([]models.Notification, error)
	Append(userID string, draft models.NotificationDraft) (models.Notification, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
	Remove(userID, id string) error
	UnreadCount(userID string) (int, error)
}

type notificationRepository struct {
	store store.Store
	now   func() time.Time
}

func NewNotificationRepository(s store.Store) NotificationRepository {
	return &notificationRepository{store: s, now: time.Now}
}

// List returns the recipient's notifications, newest first.
func (r *notificationRepository) List(userID string) ([]models.Notification, error) {
	return store.Load[models.Notification](r.store, store.NotificationsKey(userID))
}

// Append prepends a new notification to the recipient's scope.
func (r *notificationRepository) Append(userID string, draft models.NotificationDraft) (models.Notification, error) {
	list, err := r.List(userID)
	if err != nil {
		return models.Notification{}, err
	}

	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      draft.Type,
		Title:     draft.Title,
		Message:   draft.Message,
		FromUser:  draft.FromUser,
		Data:      draft.Data,
		CreatedAt: r.now(),
	}

	list = append([]models.Notification{n}, list...)
	if err := store.Save(r.store, store.NotificationsKey(userID), list); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// MarkRead flags a single notification read. Unknown ids are a no-op, like
// the screen it serves. Order is never changed.
func (r *notificationRepository) MarkRead(userID, id string) error {
	list, err := r.List(userID)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
		}
	}
	return store.Save(r.store, store.NotificationsKey(userID), list)
}

func (r *notificationRepository) MarkAllRead(userID string) error {
	list, err := r.List(userID)
	if err != nil {
		return err
	}
	for i := range list {
		list[i].Read = true
	}
	return store.Save(r.store, store.NotificationsKey(userID), list)
}

func (r *notificationRepository) Remove(userID, id string) error {
	list, err := r.List(userID)
	if err != nil {
		return err
	}
	out := list[:0]
	for _, n := range list {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return store.Save(r.store, store.NotificationsKey(userID), out)
}

// UnreadCount is derived from the stored collection on every call, so it is
// exact immediately after any mutation.
func (r *notificationRepository) UnreadCount(userID string) (int, error) {
	list, err := r.List(userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

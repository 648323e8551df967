package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect/internal/models"
)

func TestAppendPrependsNotifications(t *testing.T) {
	r := NewNotificationRepository(newTestStore(t))

	_, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "Welcome", Message: "first"})
	require.NoError(t, err)
	latest, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationMessage, Title: "New Message", Message: "second"})
	require.NoError(t, err)

	list, err := r.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, latest.ID, list[0].ID)
	assert.Equal(t, "Welcome", list[1].Title)
	assert.False(t, list[0].Read)
}

func TestNotificationsAreScopedByUser(t *testing.T) {
	r := NewNotificationRepository(newTestStore(t))

	_, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "Only for u1", Message: "m"})
	require.NoError(t, err)

	other, err := r.List("u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMarkReadPreservesOrder(t *testing.T) {
	r := NewNotificationRepository(newTestStore(t))

	_, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "a", Message: "m"})
	require.NoError(t, err)
	target, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "b", Message: "m"})
	require.NoError(t, err)
	_, err = r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "c", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, r.MarkRead("u1", target.ID))

	list, err := r.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].Title)
	assert.Equal(t, "b", list[1].Title)
	assert.True(t, list[1].Read)
	assert.False(t, list[0].Read)
	assert.False(t, list[2].Read)
}

func TestMarkReadUnknownIDIsNoOp(t *testing.T) {
	r := NewNotificationRepository(newTestStore(t))

	_, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "a", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, r.MarkRead("u1", "missing"))

	count, err := r.UnreadCount("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMarkAllReadZeroesUnreadCount(t *testing.T) {
	r := NewNotificationRepository(newTestStore(t))

	for _, title := range []string{"a", "b", "c"} {
		_, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: title, Message: "m"})
		require.NoError(t, err)
	}
	count, err := r.UnreadCount("u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, r.MarkAllRead("u1"))

	count, err = r.UnreadCount("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRemoveNotification(t *testing.T) {
	r := NewNotificationRepository(newTestStore(t))

	_, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "keep", Message: "m"})
	require.NoError(t, err)
	target, err := r.Append("u1", models.NotificationDraft{Type: models.NotificationSystem, Title: "drop", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, r.Remove("u1", target.ID))

	list, err := r.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "keep", list[0].Title)

	// Removing again does nothing.
	require.NoError(t, r.Remove("u1", target.ID))
}

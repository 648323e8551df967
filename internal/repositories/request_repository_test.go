package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect/internal/models"
)

func newRequestRepo(t *testing.T) (RequestRepository, NotificationRepository) {
	t.Helper()
	s := newTestStore(t)
	notifications := NewNotificationRepository(s)
	return NewRequestRepository(s, notifications), notifications
}

func TestCreateRequestNotifiesMentor(t *testing.T) {
	r, notifications := newRequestRepo(t)

	req, err := r.Create(models.MentorshipDraft{
		Student: student("s1", "Ada"),
		Mentor:  alumnus("a1", "Grace"),
		Subject: "Career advice",
		Message: "Could you mentor me?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.Nil(t, req.RespondedAt)
	assert.Equal(t, "Ada", req.StudentName)
	assert.Equal(t, "Grace", req.AlumniName)

	mentorNotifs, err := notifications.List("a1")
	require.NoError(t, err)
	require.Len(t, mentorNotifs, 1)
	assert.Equal(t, models.NotificationRequest, mentorNotifs[0].Type)
	assert.Equal(t, "s1", mentorNotifs[0].FromUser.ID)
	assert.Equal(t, req.ID, mentorNotifs[0].Data["requestId"])
}

func TestRespondAcceptNotifiesStudent(t *testing.T) {
	r, notifications := newRequestRepo(t)

	req, err := r.Create(models.MentorshipDraft{Student: student("s1", "Ada"), Mentor: alumnus("a1", "Grace"), Subject: "Advice", Message: "m"})
	require.NoError(t, err)

	got, err := r.Respond(req.ID, models.RequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, got.Status)
	require.NotNil(t, got.RespondedAt)

	studentNotifs, err := notifications.List("s1")
	require.NoError(t, err)
	require.Len(t, studentNotifs, 1)
	assert.Equal(t, models.NotificationSystem, studentNotifs[0].Type)
	assert.Contains(t, studentNotifs[0].Message, "Grace")
	assert.Contains(t, studentNotifs[0].Message, "accepted")
}

func TestRespondOnlyOnce(t *testing.T) {
	r, _ := newRequestRepo(t)

	req, err := r.Create(models.MentorshipDraft{Student: student("s1", "Ada"), Mentor: alumnus("a1", "Grace"), Subject: "Advice", Message: "m"})
	require.NoError(t, err)

	_, err = r.Respond(req.ID, models.RequestDeclined)
	require.NoError(t, err)

	// A decided request cannot be decided again.
	_, err = r.Respond(req.ID, models.RequestAccepted)
	assert.Error(t, err)
}

func TestRespondRejectsBadStatus(t *testing.T) {
	r, _ := newRequestRepo(t)

	_, err := r.Respond("any", models.RequestPending)
	assert.Error(t, err)

	_, err = r.Respond("missing", models.RequestAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestsFilterBySide(t *testing.T) {
	r, _ := newRequestRepo(t)

	_, err := r.Create(models.MentorshipDraft{Student: student("s1", "Ada"), Mentor: alumnus("a1", "Grace"), Subject: "A", Message: "m"})
	require.NoError(t, err)
	_, err = r.Create(models.MentorshipDraft{Student: student("s2", "Bob"), Mentor: alumnus("a1", "Grace"), Subject: "B", Message: "m"})
	require.NoError(t, err)

	forAda, err := r.ForStudent("s1")
	require.NoError(t, err)
	require.Len(t, forAda, 1)
	assert.Equal(t, "A", forAda[0].Subject)

	forGrace, err := r.ForMentor("a1")
	require.NoError(t, err)
	assert.Len(t, forGrace, 2)
	// Newest request first.
	assert.Equal(t, "B", forGrace[0].Subject)
}

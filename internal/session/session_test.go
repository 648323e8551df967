package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

func newManager(t *testing.T) (*Manager, store.Store) {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewManager(s), s
}

func testUser() models.User {
	return models.User{
		ID:         "u1",
		Email:      "ada@mit.edu",
		Name:       "Ada",
		Role:       models.RoleStudent,
		College:    "mit",
		Department: "Computer Science",
		Batch:      "2024",
	}
}

func TestHydrateWithoutSession(t *testing.T) {
	m, _ := newManager(t)

	u, err := m.Hydrate()
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLoginPersistsDefaultedUser(t *testing.T) {
	m, _ := newManager(t)

	stored, err := m.Login(testUser())
	require.NoError(t, err)
	assert.NotNil(t, stored.Skills)
	assert.Equal(t, models.VisibilityCollege, stored.ProfileVisibility)

	u, err := m.Hydrate()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ada", u.Name)
}

func TestHydrateDefaultsLegacyRecord(t *testing.T) {
	m, s := newManager(t)

	// A session stored before the social and privacy fields existed.
	legacy := `{"id":"u1","email":"ada@mit.edu","name":"Ada","role":"student",` +
		`"college":"mit","department":"Computer Science","batch":"2024",` +
		`"joinedAt":"2024-01-15T10:00:00Z"}`
	require.NoError(t, s.Put(store.SessionKey, legacy))

	u, err := m.Hydrate()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotNil(t, u.Skills)
	assert.NotNil(t, u.Followers)
	assert.NotNil(t, u.Friends)
	assert.Empty(t, u.Languages)
	assert.Equal(t, models.VisibilityCollege, u.ProfileVisibility)
	assert.Equal(t, models.VisibilityCollege, u.ContactVisibility)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	m, _ := newManager(t)

	_, err := m.Login(testUser())
	require.NoError(t, err)

	bio := "Distributed systems person"
	company := "Acme"
	u, err := m.Update(models.ProfileUpdate{Bio: &bio, Company: &company})
	require.NoError(t, err)
	assert.Equal(t, "Distributed systems person", u.Bio)
	assert.Equal(t, "Acme", u.Company)
	assert.Equal(t, "Ada", u.Name)

	// The merge is persisted, not just returned.
	again, err := m.Hydrate()
	require.NoError(t, err)
	assert.Equal(t, "Acme", again.Company)
}

func TestUpdateWithoutSession(t *testing.T) {
	m, _ := newManager(t)

	name := "Nobody"
	_, err := m.Update(models.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogoutClearsOnlySession(t *testing.T) {
	m, s := newManager(t)

	require.NoError(t, store.Save(s, store.DirectoryKey, []models.User{testUser()}))
	_, err := m.Login(testUser())
	require.NoError(t, err)

	require.NoError(t, m.Logout())

	u, err := m.Hydrate()
	require.NoError(t, err)
	assert.Nil(t, u)

	directory, err := store.Load[models.User](s, store.DirectoryKey)
	require.NoError(t, err)
	assert.Len(t, directory, 1)
}

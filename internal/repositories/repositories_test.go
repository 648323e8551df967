package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func student(id, name string) models.User {
	return models.User{
		ID:         id,
		Email:      name + "@mit.edu",
		Name:       name,
		Role:       models.RoleStudent,
		College:    "mit",
		Department: "Computer Science",
		Batch:      "2024",
	}
}

func alumnus(id, name string) models.User {
	u := student(id, name)
	u.Role = models.RoleAlumni
	u.Batch = "2018"
	u.CurrentPosition = "Engineer"
	u.Company = "Acme"
	return u
}

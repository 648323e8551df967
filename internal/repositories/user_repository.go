package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// ErrNotFound is returned when a lookup misses. Login against an unknown
// email is the one case the UI surfaces directly.
var ErrNotFound = errors.New("record not found")

// UserRepository is the durable account directory.
type UserRepository interface {
	Register(req models.SignupRequest) (models.User, error)
	All() ([]models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	Directory(college, excludeID string) ([]models.User, error)
}

type userRepository struct {
	store store.Store
	now   func() time.Time
}

func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s, now: time.Now}
}

// Register appends a new account to the directory. There is no credential
// check anywhere in the system; signup is the only gate.
func (r *userRepository) Register(req models.SignupRequest) (models.User, error) {
	users, err := r.All()
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:         uuid.NewString(),
		Email:      req.Email,
		Name:       req.Name,
		Role:       req.Role,
		College:    req.College,
		Department: req.Department,
		Batch:      req.Batch,
		Bio:        req.Bio,
		JoinedAt:   r.now(),
	}
	u.ApplyDefaults()

	users = append(users, u)
	if err := store.Save(r.store, store.DirectoryKey, users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *userRepository) All() ([]models.User, error) {
	return store.Load[models.User](r.store, store.DirectoryKey)
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			users[i].ApplyDefaults()
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].ApplyDefaults()
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// Directory returns same-college members minus the viewer.
func (r *userRepository) Directory(college, excludeID string) ([]models.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.College != college || u.ID == excludeID {
			continue
		}
		u.ApplyDefaults()
		out = append(out, u)
	}
	return out, nil
}

// SearchDirectory filters the directory the way the search screen does: free
// text over name, department, batch, position and company, plus role and
// department facets (empty string means no facet). Pure; order preserved.
func SearchDirectory(users []models.User, query string, role models.Role, department string) []models.User {
	q := strings.ToLower(query)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if query != "" && !matchesUser(u, q) {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		if department != "" && u.Department != department {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesUser(u models.User, q string) bool {
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Department), q) ||
		strings.Contains(u.Batch, q) ||
		strings.Contains(strings.ToLower(u.CurrentPosition), q) ||
		strings.Contains(strings.ToLower(u.Company), q)
}

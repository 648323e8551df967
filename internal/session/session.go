// Package session tracks the single logged-in identity.
package session

import (
	"errors"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// ErrNoSession is returned by Update when nobody is logged in.
var ErrNoSession = errors.New("no active session")

// Manager owns the session record. What it exposes is always either absent or
// a fully-defaulted User; no partially-shaped session leaks to consumers.
type Manager struct {
	store store.Store
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// Hydrate loads the active session, backfilling fields added to the User
// shape after the record was stored. Returns nil when nobody is logged in.
func (m *Manager) Hydrate() (*models.User, error) {
	u, ok, err := store.LoadOne[models.User](m.store, store.SessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	u.ApplyDefaults()
	return u, nil
}

// Login defaults the user, persists it as the active session, and returns the
// shape that was stored.
func (m *Manager) Login(u models.User) (models.User, error) {
	u.ApplyDefaults()
	if err := store.SaveOne(m.store, store.SessionKey, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Logout clears the session key only; the durable directory record stays.
func (m *Manager) Logout() error {
	return m.store.Delete(store.SessionKey)
}

// Update merges the partial update into the active session and re-persists.
func (m *Manager) Update(p models.ProfileUpdate) (*models.User, error) {
	u, err := m.Hydrate()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNoSession
	}
	u.Merge(p)
	if err := store.SaveOne(m.store, store.SessionKey, *u); err != nil {
		return nil, err
	}
	return u, nil
}

// Package store persists serialized record collections under flat string
// keys, the way the browser app used localStorage: one JSON blob per scope,
// no cross-key atomicity, malformed blobs treated as absent.
package store

import (
	"encoding/json"
	"fmt"
)

// Store is the key-value surface every driver implements.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Put(key, value string) error
	Delete(key string) error
	Close() error
}

// Scope keys. Posts, jobs and events partition by college; notifications by
// recipient; message logs by conversation.
const (
	SessionKey       = "alumni-connect-user"
	DirectoryKey     = "alumni-connect-users"
	ConversationsKey = "alumni-connect-conversations"
	RequestsKey      = "alumni-connect-requests"
)

func PostsKey(college string) string  { return "alumni-connect-posts-" + college }
func JobsKey(college string) string   { return "alumni-connect-jobs-" + college }
func EventsKey(college string) string { return "alumni-connect-events-" + college }

func NotificationsKey(userID string) string { return "notifications-" + userID }

func MessagesKey(conversationID string) string { return "messages-" + conversationID }

// Load reads the collection stored under key. A missing key, or a blob that
// no longer decodes, yields an empty collection rather than an error; there
// is no corruption repair.
func Load[T any](s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}, nil
	}
	return items, nil
}

// Save serializes items and replaces the collection stored under key. Date
// fields round-trip through their RFC3339 JSON form.
func Save[T any](s Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.Put(key, string(raw)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// LoadOne reads a single record. Absent and malformed both report ok=false.
func LoadOne[T any](s Store, key string) (*T, bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil, false, nil
	}
	var item T
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, false, nil
	}
	return &item, true, nil
}

// SaveOne serializes a single record under key.
func SaveOne[T any](s Store, key string, item T) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.Put(key, string(raw)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

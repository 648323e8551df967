package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// ConversationRepository owns the conversation list, the per-conversation
// message logs, and the unread counters.
type ConversationRepository interface {
	List() ([]models.Conversation, error)
	ListForUser(userID string) ([]models.Conversation, error)
	Get(id string) (*models.Conversation, error)
	FindOrCreate(a, b models.Participant) (models.Conversation, bool, error)
	Append(conversationID, senderID, body string, msgType models.MessageType) (models.ChatMessage, error)
	Messages(conversationID string) ([]models.ChatMessage, error)
	MarkRead(conversationID, userID string) error
}

type conversationRepository struct {
	store         store.Store
	notifications NotificationRepository
	now           func() time.Time
}

func NewConversationRepository(s store.Store, notifications NotificationRepository) ConversationRepository {
	return &conversationRepository{store: s, notifications: notifications, now: time.Now}
}

func (r *conversationRepository) List() ([]models.Conversation, error) {
	return store.Load[models.Conversation](r.store, store.ConversationsKey)
}

func (r *conversationRepository) ListForUser(userID string) ([]models.Conversation, error) {
	convs, err := r.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Conversation, 0, len(convs))
	for _, c := range convs {
		if c.HasParticipants(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *conversationRepository) Get(id string) (*models.Conversation, error) {
	convs, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range convs {
		if convs[i].ID == id {
			return &convs[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindOrCreate resolves the direct conversation for an unordered participant
// pair. The search is set containment, not positional equality, so swapped
// arguments find the same conversation. A new conversation starts with
// zeroed unread counters for both participants and is prepended. The second
// return reports whether a conversation was created.
func (r *conversationRepository) FindOrCreate(a, b models.Participant) (models.Conversation, bool, error) {
	convs, err := r.List()
	if err != nil {
		return models.Conversation{}, false, err
	}
	for _, c := range convs {
		if !c.IsGroup && c.HasParticipants(a.ID, b.ID) {
			return c, false, nil
		}
	}

	now := r.now()
	conv := models.Conversation{
		ID:                 uuid.NewString(),
		Participants:       []string{a.ID, b.ID},
		ParticipantDetails: []models.Participant{a, b},
		LastActivity:       now,
		CreatedAt:          now,
		UnreadCount:        map[string]int{a.ID: 0, b.ID: 0},
	}

	convs = append([]models.Conversation{conv}, convs...)
	if err := store.Save(r.store, store.ConversationsKey, convs); err != nil {
		return models.Conversation{}, false, err
	}
	return conv, true, nil
}

// Append stores the message in the conversation's log, refreshes the parent's
// lastMessage and lastActivity caches, bumps every receiver's unread counter,
// and raises a message notification per receiver. The log write, the
// conversation write, and the notification writes are independent; a crash
// between them leaves the others behind.
func (r *conversationRepository) Append(conversationID, senderID, body string, msgType models.MessageType) (models.ChatMessage, error) {
	convs, err := r.List()
	if err != nil {
		return models.ChatMessage{}, err
	}

	idx := -1
	for i := range convs {
		if convs[i].ID == conversationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ChatMessage{}, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
	}
	conv := &convs[idx]

	var sender models.Participant
	for _, p := range conv.ParticipantDetails {
		if p.ID == senderID {
			sender = p
			break
		}
	}

	if msgType == "" {
		msgType = models.MessageText
	}
	receiverID := ""
	if other, ok := conv.Other(senderID); ok && !conv.IsGroup {
		receiverID = other.ID
	}

	msg := models.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     sender.Name,
		SenderAvatar:   sender.Avatar,
		ReceiverID:     receiverID,
		Message:        body,
		MessageType:    msgType,
		Timestamp:      r.now(),
	}

	log, err := r.Messages(conversationID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	log = append(log, msg)
	if err := store.Save(r.store, store.MessagesKey(conversationID), log); err != nil {
		return models.ChatMessage{}, err
	}

	conv.LastMessage = &msg
	conv.LastActivity = msg.Timestamp
	if conv.UnreadCount == nil {
		conv.UnreadCount = map[string]int{}
	}
	for _, id := range conv.Participants {
		if id != senderID {
			conv.UnreadCount[id]++
		}
	}
	if err := store.Save(r.store, store.ConversationsKey, convs); err != nil {
		return models.ChatMessage{}, err
	}

	for _, id := range conv.Participants {
		if id == senderID {
			continue
		}
		_, err := r.notifications.Append(id, models.NotificationDraft{
			Type:     models.NotificationMessage,
			Title:    "New Message",
			Message:  fmt.Sprintf("%s sent you a message", sender.Name),
			FromUser: &models.UserRef{ID: sender.ID, Name: sender.Name, Avatar: sender.Avatar},
			Data:     map[string]any{"conversationId": conversationID},
		})
		if err != nil {
			return models.ChatMessage{}, err
		}
	}

	return msg, nil
}

// Messages returns the conversation's log in strict append order, oldest
// first. Date-bucketed grouping is the presentation layer's concern.
func (r *conversationRepository) Messages(conversationID string) ([]models.ChatMessage, error) {
	return store.Load[models.ChatMessage](r.store, store.MessagesKey(conversationID))
}

// MarkRead zeroes the user's unread counter and flags their received
// messages read.
func (r *conversationRepository) MarkRead(conversationID, userID string) error {
	convs, err := r.List()
	if err != nil {
		return err
	}
	for i := range convs {
		if convs[i].ID != conversationID {
			continue
		}
		if convs[i].UnreadCount == nil {
			convs[i].UnreadCount = map[string]int{}
		}
		convs[i].UnreadCount[userID] = 0
		if err := store.Save(r.store, store.ConversationsKey, convs); err != nil {
			return err
		}

		log, err := r.Messages(conversationID)
		if err != nil {
			return err
		}
		for j := range log {
			if log[j].SenderID != userID {
				log[j].Read = true
			}
		}
		return store.Save(r.store, store.MessagesKey(conversationID), log)
	}
	return ErrNotFound
}

// SearchConversations filters by the counterpart's name, the way the chat
// sidebar search does. Pure; order preserved.
func SearchConversations(convs []models.Conversation, userID, query string) []models.Conversation {
	if query == "" {
		return convs
	}
	q := strings.ToLower(query)
	out := make([]models.Conversation, 0, len(convs))
	for _, c := range convs {
		other, ok := c.Other(userID)
		if ok && strings.Contains(strings.ToLower(other.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

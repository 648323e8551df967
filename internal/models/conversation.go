package models

import "time"

// MessageType classifies a chat message body.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
	MessageVoice MessageType = "voice"
	MessageVideo MessageType = "video"
)

// Participant is the denormalized display snapshot of a conversation member.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   Role   `json:"role"`
}

// ChatMessage lives in a per-conversation log and is mirrored into the parent
// conversation's lastMessage cache.
type ChatMessage struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversationId"`
	SenderID       string      `json:"senderId"`
	SenderName     string      `json:"senderName"`
	SenderAvatar   string      `json:"senderAvatar,omitempty"`
	ReceiverID     string      `json:"receiverId"`
	Message        string      `json:"message"`
	MessageType    MessageType `json:"messageType"` // text, image, file, voice, video
	Timestamp      time.Time   `json:"timestamp"`
	Read           bool        `json:"read"`
}

// Conversation groups a participant set with its message-log metadata. At
// most one direct conversation exists per unordered participant pair.
type Conversation struct {
	ID                 string         `json:"id"`
	Participants       []string       `json:"participants"`
	ParticipantDetails []Participant  `json:"participantDetails"`
	LastMessage        *ChatMessage   `json:"lastMessage,omitempty"`
	LastActivity       time.Time      `json:"lastActivity"`
	IsGroup            bool           `json:"isGroup"`
	GroupName          string         `json:"groupName,omitempty"`
	CreatedBy          string         `json:"createdBy,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UnreadCount        map[string]int `json:"unreadCount"`
}

// HasParticipants reports whether every given id is a member, regardless of
// order.
func (c *Conversation) HasParticipants(ids ...string) bool {
	for _, id := range ids {
		if !c.hasParticipant(id) {
			return false
		}
	}
	return true
}

func (c *Conversation) hasParticipant(id string) bool {
	for _, p := range c.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// Other returns the participant snapshot that is not userID. For direct
// conversations this is the counterpart shown in the sidebar.
func (c *Conversation) Other(userID string) (Participant, bool) {
	for _, p := range c.ParticipantDetails {
		if p.ID != userID {
			return p, true
		}
	}
	return Participant{}, false
}

package models

import (
	"time"

	"github.com/goccy/go-json"
)

// NotificationKind is the discriminant of a notification
type NotificationKind string

const (
	NotificationFriendRequest NotificationKind = "friend_request"
	NotificationNewMessage    NotificationKind = "new_message"
)

// Notification is a friend-request or new-message notification.
// Data is opaque for friend requests and NewMessageData for new messages.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationKind `json:"type"`
	Seen      bool             `json:"seen"`
	UserID    int64            `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Data      json.RawMessage  `json:"data,omitempty"`
}

// NewMessageData is the payload of a new-message notification
type NewMessageData struct {
	ChatID int64 `json:"chatId"`
}

// ChatID returns the chat referenced by a new-message notification
func (n Notification) ChatID() (int64, bool) {
	if n.Type != NotificationNewMessage || len(n.Data) == 0 {
		return 0, false
	}
	var data NewMessageData
	if err := json.Unmarshal(n.Data, &data); err != nil {
		return 0, false
	}
	return data.ChatID, true
}

// GetNotificationsResponse is the body of the notification snapshot endpoints
type GetNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

// MarkChatSeenRequest is the body of PUT /notifications/new-messages/mark-as-seen
type MarkChatSeenRequest struct {
	ChatID int64 `json:"chatId"`
}

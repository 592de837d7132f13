package models

import (
	"time"
)

// ChatType distinguishes one-to-one chats from group chats
type ChatType string

const (
	ChatTypePrivate ChatType = "private"
	ChatTypeGroup   ChatType = "group"
)

// Chat represents a chat as listed by GET /chats
type Chat struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      ChatType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Members   []User    `json:"members"`
}

// ChatDetail is a chat together with its messages, newest first
type ChatDetail struct {
	Chat
	Messages []Message `json:"messages"`
}

// Message is a chat message. Negative IDs mark optimistic placeholders
// that have not been confirmed by the server yet.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      User      `json:"user"`
}

// Optimistic reports whether the message is a client-side placeholder
func (m Message) Optimistic() bool {
	return m.ID < 0
}

// GetChatsResponse is the body of GET /chats
type GetChatsResponse struct {
	Chats []Chat `json:"chats"`
}

// SendMessageRequest is the body of POST /chats/{id}/messages
type SendMessageRequest struct {
	Text string `json:"text"`
}

// UpdateChatNameRequest is the body of PUT /chats/{id}/update-name
type UpdateChatNameRequest struct {
	NewName string `json:"newName"`
}

// SuccessMessageResponse is the generic acknowledgement body of mutating endpoints
type SuccessMessageResponse struct {
	Message string `json:"message"`
}

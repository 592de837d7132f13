package frames

import (
	"github.com/piresc/chatsync/internal/pkg/models"
)

// Kind is the closed set of inbound frame classifications
type Kind int

const (
	// Ignored covers null, non-object and untyped payloads
	Ignored Kind = iota
	TokenRotation
	NewMessage
	ChatRenamed
	FriendRequestNotification
	NewMessageNotification
	// UnknownType is an object with a string type no schema accepted
	UnknownType
)

var kindNames = map[Kind]string{
	Ignored:                   "ignored",
	TokenRotation:             "token_rotation",
	NewMessage:                "new_message",
	ChatRenamed:               "chat_renamed",
	FriendRequestNotification: "friend_request_notification",
	NewMessageNotification:    "new_message_notification",
	UnknownType:               "unknown_type",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Frame is a classified inbound payload. Only the fields belonging to
// Kind are populated; Raw always holds the original payload.
type Frame struct {
	Kind Kind
	// Type is the raw discriminant, empty for Ignored
	Type string

	Credentials  models.Credentials
	Message      models.Message
	NewName      string
	Notification models.Notification

	Raw []byte
}

// Forwardable reports whether the frame should reach domain handlers
func (f Frame) Forwardable() bool {
	return f.Kind != TokenRotation
}

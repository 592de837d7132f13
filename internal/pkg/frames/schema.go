package frames

import (
	"github.com/piresc/chatsync/internal/pkg/constants"
)

// Wire schemas. Pointer fields tagged required must be present,
// the zero value of the pointee is accepted.

type tokenRotationWire struct {
	Type         string  `json:"type" validate:"eq=update_access_token"`
	AccessToken  *string `json:"accessToken" validate:"required"`
	RefreshToken *string `json:"refreshToken" validate:"required"`
}

type userWire struct {
	ID        *int64  `json:"id" validate:"required"`
	Username  *string `json:"username" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	Active    *bool   `json:"active" validate:"required"`
	CreatedAt *string `json:"createdAt" validate:"required"`
	UpdatedAt *string `json:"updatedAt" validate:"required"`
}

type messageWire struct {
	ID        *int64    `json:"id" validate:"required"`
	Text      *string   `json:"text" validate:"required"`
	CreatedAt *string   `json:"createdAt" validate:"required"`
	UpdatedAt *string   `json:"updatedAt" validate:"required"`
	User      *userWire `json:"user" validate:"required"`
}

type newMessageWire struct {
	Type    string       `json:"type" validate:"eq=new_message"`
	Message *messageWire `json:"message" validate:"required"`
}

type chatRenamedWire struct {
	Type    string  `json:"type" validate:"eq=chat_name_updated"`
	NewName *string `json:"newName" validate:"required"`
}

type notificationWire struct {
	ID        *int64  `json:"id" validate:"required"`
	Seen      *bool   `json:"seen" validate:"required"`
	UserID    *int64  `json:"userId" validate:"required"`
	CreatedAt *string `json:"createdAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	UpdatedAt *string `json:"updatedAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type friendRequestWire struct {
	notificationWire
	Type string      `json:"type" validate:"eq=friend_request"`
	Data interface{} `json:"data,omitempty"`
}

type chatRefWire struct {
	ChatID *int64 `json:"chatId" validate:"required"`
}

type newMessageNotificationWire struct {
	notificationWire
	Type string       `json:"type" validate:"eq=new_message"`
	Data *chatRefWire `json:"data" validate:"required"`
}

// discriminants lists every type value a schema accepts
var discriminants = map[string]struct{}{
	constants.FrameUpdateAccessToken: {},
	constants.FrameNewMessage:        {},
	constants.FrameChatNameUpdated:   {},
	constants.FrameFriendRequest:     {},
}

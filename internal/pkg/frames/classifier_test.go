package frames

import (
	"testing"
	"time"

	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userJSON     = `{"id":7,"username":"alice","email":"alice@example.com","active":true,"createdAt":"2024-01-01T10:00:00Z","updatedAt":"2024-01-01T10:00:00Z"}`
	messageJSON  = `{"id":42,"text":"hi","createdAt":"2024-03-01T12:00:00Z","updatedAt":"2024-03-01T12:00:00Z","user":` + userJSON + `}`
	notifFields  = `"id":5,"seen":false,"userId":7,"createdAt":"2024-03-01T12:00:00Z","updatedAt":"2024-03-01T12:00:00.123Z"`
	rotationJSON = `{"type":"update_access_token","accessToken":"new-a","refreshToken":"new-r"}`
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isNil bool
	}{
		{name: "object", input: `{"type":"x"}`},
		{name: "null literal", input: `null`},
		{name: "number", input: `12`},
		{name: "truncated", input: `{"type":`, isNil: true},
		{name: "plain text", input: `hello`, isNil: true},
		{name: "empty", input: ``, isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.input))
			if tt.isNil {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, tt.input, string(got))
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantType string
	}{
		{name: "token rotation", input: rotationJSON, wantKind: TokenRotation, wantType: "update_access_token"},
		{name: "rotation with empty tokens is still rotation", input: `{"type":"update_access_token","accessToken":"","refreshToken":""}`, wantKind: TokenRotation, wantType: "update_access_token"},
		{name: "rotation missing refresh token", input: `{"type":"update_access_token","accessToken":"a"}`, wantKind: UnknownType, wantType: "update_access_token"},
		{name: "chat message", input: `{"type":"new_message","message":` + messageJSON + `}`, wantKind: NewMessage, wantType: "new_message"},
		{name: "chat message with wrong id type", input: `{"type":"new_message","message":{"id":"42"}}`, wantKind: UnknownType, wantType: "new_message"},
		{name: "chat renamed", input: `{"type":"chat_name_updated","newName":"crew"}`, wantKind: ChatRenamed, wantType: "chat_name_updated"},
		{name: "friend request without data", input: `{"type":"friend_request",` + notifFields + `}`, wantKind: FriendRequestNotification, wantType: "friend_request"},
		{name: "friend request with data", input: `{"type":"friend_request",` + notifFields + `,"data":{"from":3}}`, wantKind: FriendRequestNotification, wantType: "friend_request"},
		{name: "friend request with bad timestamp", input: `{"type":"friend_request","id":5,"seen":false,"userId":7,"createdAt":"yesterday","updatedAt":"yesterday"}`, wantKind: UnknownType, wantType: "friend_request"},
		{name: "new message notification", input: `{"type":"new_message",` + notifFields + `,"data":{"chatId":9}}`, wantKind: NewMessageNotification, wantType: "new_message"},
		{name: "new message notification without chat id", input: `{"type":"new_message",` + notifFields + `,"data":{}}`, wantKind: UnknownType, wantType: "new_message"},
		{name: "unrecognized type", input: `{"type":"typing","chatId":1}`, wantKind: UnknownType, wantType: "typing"},
		{name: "untyped object", input: `{"hello":"world"}`, wantKind: Ignored},
		{name: "non string type", input: `{"type":3}`, wantKind: Ignored},
		{name: "array", input: `[1,2]`, wantKind: Ignored},
		{name: "null", input: `null`, wantKind: Ignored},
		{name: "string", input: `"update_access_token"`, wantKind: Ignored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := Classify(Parse([]byte(tt.input)))

			assert.Equal(t, tt.wantKind, frame.Kind, "kind %s", frame.Kind)
			assert.Equal(t, tt.wantType, frame.Type)
			assert.Equal(t, tt.input, string(frame.Raw))
		})
	}
}

func TestClassify_NilInput(t *testing.T) {
	frame := Classify(nil)
	assert.Equal(t, Ignored, frame.Kind)
	assert.True(t, frame.Forwardable())
}

func TestClassify_DecodesPayloads(t *testing.T) {
	rotation := Classify(Parse([]byte(rotationJSON)))
	assert.Equal(t, models.Credentials{AccessToken: "new-a", RefreshToken: "new-r"}, rotation.Credentials)
	assert.False(t, rotation.Forwardable())

	msg := Classify(Parse([]byte(`{"type":"new_message","message":` + messageJSON + `}`)))
	require.Equal(t, NewMessage, msg.Kind)
	assert.Equal(t, int64(42), msg.Message.ID)
	assert.Equal(t, "hi", msg.Message.Text)
	assert.Equal(t, int64(7), msg.Message.User.ID)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), msg.Message.CreatedAt.UTC())

	notif := Classify(Parse([]byte(`{"type":"new_message",` + notifFields + `,"data":{"chatId":9}}`)))
	require.Equal(t, NewMessageNotification, notif.Kind)
	chatID, ok := notif.Notification.ChatID()
	assert.True(t, ok)
	assert.Equal(t, int64(9), chatID)
	assert.False(t, notif.Notification.Seen)
	assert.Equal(t, 123*time.Millisecond, time.Duration(notif.Notification.UpdatedAt.Nanosecond()))

	renamed := Classify(Parse([]byte(`{"type":"chat_name_updated","newName":""}`)))
	assert.Equal(t, ChatRenamed, renamed.Kind)
	assert.Equal(t, "", renamed.NewName)
}

func TestClassify_ChatMessageWinsOverNotification(t *testing.T) {
	// Satisfies both new_message shapes; the chat message schema is tried first.
	input := `{"type":"new_message",` + notifFields + `,"data":{"chatId":9},"message":` + messageJSON + `}`

	frame := Classify(Parse([]byte(input)))

	assert.Equal(t, NewMessage, frame.Kind)
}

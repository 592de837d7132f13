package frames

import (
	"bytes"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
)

var validate = validator.New()

// decoder tries one schema and reports whether raw satisfied it
type decoder func(raw []byte, f *Frame) bool

// priority is the fixed order in which schemas are tried; first match wins
var priority = []decoder{
	decodeTokenRotation,
	decodeNewMessage,
	decodeChatRenamed,
	decodeFriendRequest,
	decodeNewMessageNotification,
}

// Parse returns data as a JSON value, or nil when data is not valid JSON
func Parse(data []byte) []byte {
	if len(bytes.TrimSpace(data)) == 0 || !json.Valid(data) {
		return nil
	}
	return data
}

// Classify maps a parsed payload onto exactly one Kind. It never fails:
// payloads no schema accepts come back as UnknownType or Ignored.
func Classify(raw []byte) Frame {
	frame := Frame{Kind: Ignored, Raw: raw}

	typ, ok := discriminant(raw)
	if !ok {
		return frame
	}
	frame.Type = typ

	for _, decode := range priority {
		candidate := Frame{Type: typ, Raw: raw}
		if decode(raw, &candidate) {
			return candidate
		}
	}

	frame.Kind = UnknownType
	if _, known := discriminants[typ]; known {
		logger.Warn("Frame failed schema validation",
			logger.String("type", typ))
	} else {
		logger.Warn("Unknown frame type",
			logger.String("type", typ))
	}
	return frame
}

// discriminant extracts the string "type" field of an object payload
func discriminant(raw []byte) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var probe struct {
		Type interface{} `json:"type"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return "", false
	}
	typ, ok := probe.Type.(string)
	return typ, ok
}

// decodeInto unmarshals raw into v and runs its validation tags
func decodeInto(raw []byte, v interface{}) bool {
	if err := json.Unmarshal(raw, v); err != nil {
		return false
	}
	return validate.Struct(v) == nil
}

func decodeTokenRotation(raw []byte, f *Frame) bool {
	var w tokenRotationWire
	if !decodeInto(raw, &w) {
		return false
	}
	f.Kind = TokenRotation
	f.Credentials = models.Credentials{
		AccessToken:  *w.AccessToken,
		RefreshToken: *w.RefreshToken,
	}
	return true
}

func decodeNewMessage(raw []byte, f *Frame) bool {
	var w newMessageWire
	if !decodeInto(raw, &w) {
		return false
	}
	m, u := w.Message, w.Message.User
	f.Kind = NewMessage
	f.Message = models.Message{
		ID:        *m.ID,
		Text:      *m.Text,
		CreatedAt: parseTimestamp(*m.CreatedAt),
		UpdatedAt: parseTimestamp(*m.UpdatedAt),
		User: models.User{
			ID:        *u.ID,
			Username:  *u.Username,
			Email:     *u.Email,
			Active:    *u.Active,
			CreatedAt: parseTimestamp(*u.CreatedAt),
			UpdatedAt: parseTimestamp(*u.UpdatedAt),
		},
	}
	return true
}

func decodeChatRenamed(raw []byte, f *Frame) bool {
	var w chatRenamedWire
	if !decodeInto(raw, &w) {
		return false
	}
	f.Kind = ChatRenamed
	f.NewName = *w.NewName
	return true
}

func decodeFriendRequest(raw []byte, f *Frame) bool {
	var w friendRequestWire
	if !decodeInto(raw, &w) {
		return false
	}
	var data []byte
	if w.Data != nil {
		encoded, err := json.Marshal(w.Data)
		if err != nil {
			return false
		}
		data = encoded
	}
	f.Kind = FriendRequestNotification
	f.Notification = w.notificationWire.toModel(models.NotificationFriendRequest, data)
	return true
}

func decodeNewMessageNotification(raw []byte, f *Frame) bool {
	var w newMessageNotificationWire
	if !decodeInto(raw, &w) {
		return false
	}
	data, err := json.Marshal(models.NewMessageData{ChatID: *w.Data.ChatID})
	if err != nil {
		return false
	}
	f.Kind = NewMessageNotification
	f.Notification = w.notificationWire.toModel(models.NotificationNewMessage, data)
	return true
}

func (w notificationWire) toModel(kind models.NotificationKind, data []byte) models.Notification {
	return models.Notification{
		ID:        *w.ID,
		Type:      kind,
		Seen:      *w.Seen,
		UserID:    *w.UserID,
		CreatedAt: parseTimestamp(*w.CreatedAt),
		UpdatedAt: parseTimestamp(*w.UpdatedAt),
		Data:      data,
	}
}

// parseTimestamp accepts RFC3339 with or without fractional seconds;
// anything else yields the zero time.
func parseTimestamp(s string) time.Time {
	t, err := models.ParseTime(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

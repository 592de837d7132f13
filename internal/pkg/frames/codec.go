package frames

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/models"
)

// Marshal renders a frame back into its wire form
func Marshal(f Frame) ([]byte, error) {
	switch f.Kind {
	case TokenRotation:
		return json.Marshal(tokenRotationWire{
			Type:         constants.FrameUpdateAccessToken,
			AccessToken:  &f.Credentials.AccessToken,
			RefreshToken: &f.Credentials.RefreshToken,
		})
	case NewMessage:
		return json.Marshal(newMessageWire{
			Type:    constants.FrameNewMessage,
			Message: messageToWire(f.Message),
		})
	case ChatRenamed:
		return json.Marshal(chatRenamedWire{
			Type:    constants.FrameChatNameUpdated,
			NewName: &f.NewName,
		})
	case FriendRequestNotification:
		return json.Marshal(friendRequestWire{
			notificationWire: notificationToWire(f.Notification),
			Type:             constants.FrameFriendRequest,
			Data:             rawData(f.Notification.Data),
		})
	case NewMessageNotification:
		chatID, ok := f.Notification.ChatID()
		if !ok {
			return nil, fmt.Errorf("new message notification %d has no chat id", f.Notification.ID)
		}
		return json.Marshal(newMessageNotificationWire{
			notificationWire: notificationToWire(f.Notification),
			Type:             constants.FrameNewMessage,
			Data:             &chatRefWire{ChatID: &chatID},
		})
	case UnknownType:
		if len(f.Raw) > 0 {
			return f.Raw, nil
		}
		return json.Marshal(map[string]string{"type": f.Type})
	case Ignored:
		if len(f.Raw) > 0 {
			return f.Raw, nil
		}
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("cannot marshal frame of kind %d", int(f.Kind))
	}
}

func messageToWire(m models.Message) *messageWire {
	createdAt, updatedAt := models.FormatTime(m.CreatedAt), models.FormatTime(m.UpdatedAt)
	userCreatedAt, userUpdatedAt := models.FormatTime(m.User.CreatedAt), models.FormatTime(m.User.UpdatedAt)
	return &messageWire{
		ID:        &m.ID,
		Text:      &m.Text,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
		User: &userWire{
			ID:        &m.User.ID,
			Username:  &m.User.Username,
			Email:     &m.User.Email,
			Active:    &m.User.Active,
			CreatedAt: &userCreatedAt,
			UpdatedAt: &userUpdatedAt,
		},
	}
}

func notificationToWire(n models.Notification) notificationWire {
	createdAt, updatedAt := models.FormatTime(n.CreatedAt), models.FormatTime(n.UpdatedAt)
	return notificationWire{
		ID:        &n.ID,
		Seen:      &n.Seen,
		UserID:    &n.UserID,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}

// rawData keeps opaque notification data verbatim when re-encoded
func rawData(data []byte) interface{} {
	if len(data) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	return v
}

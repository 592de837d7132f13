package websocket

import (
	"context"

	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/notice"
	ws "github.com/piresc/chatsync/internal/pkg/websocket"
	"github.com/piresc/chatsync/services/notifications"
)

// Notifier surfaces transient notices to the user
type Notifier interface {
	Error(message string) notice.Notice
}

// NotificationHandler routes frames of the /notifications socket into
// the notification usecase
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	notifier       Notifier
}

// NewNotificationHandler creates a new notification socket handler
func NewNotificationHandler(notificationUC notifications.NotificationUC, notifier Notifier) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		notifier:       notifier,
	}
}

// Frames returns the frame handler of the notifications socket
func (h *NotificationHandler) Frames(ctx context.Context) ws.FrameHandler {
	return func(frame frames.Frame) {
		switch frame.Kind {
		case frames.FriendRequestNotification, frames.NewMessageNotification:
			h.notificationUC.HandleFrame(ctx, frame)
		case frames.UnknownType:
		default:
			logger.Debug("Ignoring frame on notifications socket",
				logger.String("kind", frame.Kind.String()))
		}
	}
}

// Listeners returns the lifecycle callbacks of the notifications socket
func (h *NotificationHandler) Listeners() ws.Listeners {
	return ws.Listeners{
		OnOpen: func() {
			logger.Info("Notifications socket open")
		},
		OnClose: func(err error) {
			logger.Warn("Notifications socket closed", logger.Err(err))
		},
		OnError: func(err error) {
			logger.Error("Notifications socket failed", logger.Err(err))
			if h.notifier != nil {
				h.notifier.Error(constants.NoticeNotificationSocket)
			}
		},
	}
}

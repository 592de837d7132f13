package notifications

import (
	"context"

	"github.com/piresc/chatsync/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/chatsync/services/notifications NotificationGW

// NotificationGW defines the notification REST gateway interface
type NotificationGW interface {
	GetFriendRequestNotifications(ctx context.Context, limit int) ([]models.Notification, error)
	GetNewMessageNotifications(ctx context.Context) ([]models.Notification, error)
	MarkFriendRequestsSeen(ctx context.Context) error
	MarkChatSeen(ctx context.Context, chatID int64) error
}

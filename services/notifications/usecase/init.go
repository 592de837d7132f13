package usecase

import (
	"context"
	"sync"

	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/notice"
	"github.com/piresc/chatsync/services/notifications"
)

// Notifier surfaces transient notices to the user
type Notifier interface {
	Error(message string) notice.Notice
}

// ChatDirectory is the cached chat list new-message pushes are checked against
type ChatDirectory interface {
	HasChat(chatID int64) bool
	RefreshChats(ctx context.Context) ([]models.Chat, error)
}

// NotificationUC implements notifications.NotificationUC
type NotificationUC struct {
	notificationGW     notifications.NotificationGW
	chats              ChatDirectory
	notifier           Notifier
	friendRequestLimit int

	mu             sync.RWMutex
	friendRequests []models.Notification
	newMessages    []models.Notification

	inflight sync.WaitGroup
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(
	notificationGW notifications.NotificationGW,
	chats ChatDirectory,
	notifier Notifier,
	friendRequestLimit int,
) *NotificationUC {
	if friendRequestLimit <= 0 {
		friendRequestLimit = constants.DefaultFriendRequestLimit
	}
	return &NotificationUC{
		notificationGW:     notificationGW,
		chats:              chats,
		notifier:           notifier,
		friendRequestLimit: friendRequestLimit,
	}
}

// Wait blocks until background chat list refreshes have completed
func (uc *NotificationUC) Wait() {
	uc.inflight.Wait()
}

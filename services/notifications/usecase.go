package notifications

import (
	"context"

	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chatsync/services/notifications NotificationUC

// NotificationUC aggregates unseen friend-request and new-message
// notifications from REST snapshots and socket pushes
type NotificationUC interface {
	Load(ctx context.Context) error
	HandleFrame(ctx context.Context, frame frames.Frame)

	FriendRequests() []models.Notification
	NewMessages() []models.Notification
	HasUnseenFriendRequests() bool
	HasUnseenMessages() bool
	HasUnseenInChat(chatID int64) bool

	MarkFriendRequestsSeen(ctx context.Context) error
	MarkChatSeen(ctx context.Context, chatID int64) error
}

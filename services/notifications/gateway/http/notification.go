package http

import (
	"context"
	"fmt"

	"github.com/piresc/chatsync/internal/pkg/constants"
	httpclient "github.com/piresc/chatsync/internal/pkg/http"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/services/notifications"
)

// NotificationGW talks to the notification endpoints of the REST API
type NotificationGW struct {
	client *httpclient.Client
}

// NewNotificationGW creates a notification gateway on top of the shared REST client
func NewNotificationGW(client *httpclient.Client) notifications.NotificationGW {
	return &NotificationGW{client: client}
}

// GetFriendRequestNotifications fetches up to limit unseen friend-request notifications
func (g *NotificationGW) GetFriendRequestNotifications(ctx context.Context, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = constants.DefaultFriendRequestLimit
	}
	var resp models.GetNotificationsResponse
	if err := g.client.GetJSON(ctx, fmt.Sprintf(constants.PathFriendRequestNotifs, limit), &resp); err != nil {
		return nil, fmt.Errorf("failed to get friend request notifications: %w", err)
	}
	return nonNil(resp.Notifications), nil
}

// GetNewMessageNotifications fetches every unseen new-message notification
func (g *NotificationGW) GetNewMessageNotifications(ctx context.Context) ([]models.Notification, error) {
	var resp models.GetNotificationsResponse
	if err := g.client.GetJSON(ctx, constants.PathNewMessageNotifs, &resp); err != nil {
		return nil, fmt.Errorf("failed to get new message notifications: %w", err)
	}
	return nonNil(resp.Notifications), nil
}

// MarkFriendRequestsSeen marks every friend-request notification as seen
func (g *NotificationGW) MarkFriendRequestsSeen(ctx context.Context) error {
	if err := g.client.PutJSON(ctx, constants.PathFriendRequestsMarkSeen, nil, nil); err != nil {
		return fmt.Errorf("failed to mark friend requests as seen: %w", err)
	}
	return nil
}

// MarkChatSeen marks the new-message notifications of a chat as seen
func (g *NotificationGW) MarkChatSeen(ctx context.Context, chatID int64) error {
	req := models.MarkChatSeenRequest{ChatID: chatID}
	if err := g.client.PutJSON(ctx, constants.PathNewMessagesMarkSeen, req, nil); err != nil {
		return fmt.Errorf("failed to mark chat %d as seen: %w", chatID, err)
	}
	return nil
}

func nonNil(list []models.Notification) []models.Notification {
	if list == nil {
		return []models.Notification{}
	}
	return list
}

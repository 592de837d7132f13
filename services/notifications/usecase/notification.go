package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
)

// Load replaces both caches with fresh unseen snapshots
func (uc *NotificationUC) Load(ctx context.Context) error {
	if err := uc.loadFriendRequests(ctx); err != nil {
		return err
	}
	return uc.loadNewMessages(ctx)
}

func (uc *NotificationUC) loadFriendRequests(ctx context.Context) error {
	list, err := uc.notificationGW.GetFriendRequestNotifications(ctx, uc.friendRequestLimit)
	if err != nil {
		return fmt.Errorf("failed to load friend request notifications: %w", err)
	}
	uc.mu.Lock()
	uc.friendRequests = list
	uc.mu.Unlock()
	logger.Debug("Friend request notifications loaded", logger.Int("count", len(list)))
	return nil
}

func (uc *NotificationUC) loadNewMessages(ctx context.Context) error {
	list, err := uc.notificationGW.GetNewMessageNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to load new message notifications: %w", err)
	}
	uc.mu.Lock()
	uc.newMessages = list
	uc.mu.Unlock()
	logger.Debug("New message notifications loaded", logger.Int("count", len(list)))
	return nil
}

// HandleFrame prepends a pushed unseen notification to its cache. A push
// for a chat missing from the chat list triggers a chat list refresh.
// Pushes already marked seen are skipped.
func (uc *NotificationUC) HandleFrame(ctx context.Context, frame frames.Frame) {
	switch frame.Kind {
	case frames.FriendRequestNotification, frames.NewMessageNotification:
		if frame.Notification.Seen {
			logger.Debug("Skipping seen notification push",
				logger.String("kind", frame.Kind.String()),
				logger.Int64("notification_id", frame.Notification.ID))
			return
		}
	}

	switch frame.Kind {
	case frames.FriendRequestNotification:
		if uc.prepend(&uc.friendRequests, frame.Notification) {
			logger.Info("Friend request notification received",
				logger.Int64("notification_id", frame.Notification.ID))
		}
	case frames.NewMessageNotification:
		chatID, _ := frame.Notification.ChatID()
		if uc.chats != nil && !uc.chats.HasChat(chatID) {
			uc.refreshChats(ctx, chatID)
		}
		if uc.prepend(&uc.newMessages, frame.Notification) {
			logger.Info("New message notification received",
				logger.ChatID(chatID),
				logger.Int64("notification_id", frame.Notification.ID))
		}
	}
}

// prepend publishes a new slice with n in front. A notification already
// cached under the same id is not added twice.
func (uc *NotificationUC) prepend(list *[]models.Notification, n models.Notification) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, existing := range *list {
		if existing.ID == n.ID {
			return false
		}
	}
	next := make([]models.Notification, 0, len(*list)+1)
	next = append(next, n)
	next = append(next, (*list)...)
	*list = next
	return true
}

func (uc *NotificationUC) refreshChats(ctx context.Context, chatID int64) {
	refreshCtx := context.WithoutCancel(ctx)
	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		if _, err := uc.chats.RefreshChats(refreshCtx); err != nil {
			logger.Warn("Failed to refresh chats for unknown chat",
				logger.ChatID(chatID),
				logger.Err(err))
		}
	}()
}

// FriendRequests returns the cached friend-request notifications, newest first
func (uc *NotificationUC) FriendRequests() []models.Notification {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.friendRequests
}

// NewMessages returns the cached new-message notifications, newest first
func (uc *NotificationUC) NewMessages() []models.Notification {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.newMessages
}

// HasUnseenFriendRequests reports whether any friend-request notification is unseen
func (uc *NotificationUC) HasUnseenFriendRequests() bool {
	return anyUnseen(uc.FriendRequests(), func(models.Notification) bool { return true })
}

// HasUnseenMessages reports whether any new-message notification is unseen
func (uc *NotificationUC) HasUnseenMessages() bool {
	return anyUnseen(uc.NewMessages(), func(models.Notification) bool { return true })
}

// HasUnseenInChat reports whether chatID has an unseen new-message notification
func (uc *NotificationUC) HasUnseenInChat(chatID int64) bool {
	return anyUnseen(uc.NewMessages(), func(n models.Notification) bool {
		id, ok := n.ChatID()
		return ok && id == chatID
	})
}

func anyUnseen(list []models.Notification, match func(models.Notification) bool) bool {
	for _, n := range list {
		if !n.Seen && match(n) {
			return true
		}
	}
	return false
}

// MarkFriendRequestsSeen marks friend requests seen on the API and refetches
func (uc *NotificationUC) MarkFriendRequestsSeen(ctx context.Context) error {
	if err := uc.notificationGW.MarkFriendRequestsSeen(ctx); err != nil {
		uc.fail(constants.NoticeMarkFailed, err)
		return err
	}
	if err := uc.loadFriendRequests(ctx); err != nil {
		uc.fail(constants.NoticeLoadFailed, err)
		return err
	}
	return nil
}

// MarkChatSeen marks the new messages of chatID seen on the API and refetches
func (uc *NotificationUC) MarkChatSeen(ctx context.Context, chatID int64) error {
	if err := uc.notificationGW.MarkChatSeen(ctx, chatID); err != nil {
		uc.fail(constants.NoticeMarkFailed, err)
		return err
	}
	if err := uc.loadNewMessages(ctx); err != nil {
		uc.fail(constants.NoticeLoadFailed, err)
		return err
	}
	return nil
}

func (uc *NotificationUC) fail(message string, err error) {
	logger.Warn(message, logger.Err(err))
	if uc.notifier != nil {
		uc.notifier.Error(message)
	}
}

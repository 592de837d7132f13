package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/utils"
	"github.com/piresc/chatsync/services/notifications"
)

// NotificationHandler handles HTTP requests for the notification read model
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// NotificationsResponse is the aggregated notification state
type NotificationsResponse struct {
	FriendRequests          []models.Notification `json:"friendRequests"`
	NewMessages             []models.Notification `json:"newMessages"`
	HasUnseenFriendRequests bool                  `json:"hasUnseenFriendRequests"`
	HasUnseenMessages       bool                  `json:"hasUnseenMessages"`
}

// GetNotifications returns both notification caches with their unseen flags
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	if c.QueryParam("refresh") == "true" {
		if err := h.notificationUC.Load(c.Request().Context()); err != nil {
			return utils.UpstreamErrorResponse(c, err, "Failed to load notifications")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications", NotificationsResponse{
		FriendRequests:          orEmpty(h.notificationUC.FriendRequests()),
		NewMessages:             orEmpty(h.notificationUC.NewMessages()),
		HasUnseenFriendRequests: h.notificationUC.HasUnseenFriendRequests(),
		HasUnseenMessages:       h.notificationUC.HasUnseenMessages(),
	})
}

// GetChatUnseen reports whether a chat has unseen new-message notifications
func (h *NotificationHandler) GetChatUnseen(c echo.Context) error {
	chatID, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid chat ID")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Chat notifications", echo.Map{
		"chatId":    chatID,
		"hasUnseen": h.notificationUC.HasUnseenInChat(chatID),
	})
}

// MarkFriendRequestsSeen marks friend-request notifications as seen
func (h *NotificationHandler) MarkFriendRequestsSeen(c echo.Context) error {
	if err := h.notificationUC.MarkFriendRequestsSeen(c.Request().Context()); err != nil {
		return utils.UpstreamErrorResponse(c, err, "Failed to mark friend requests as seen")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Friend requests marked as seen", nil)
}

// MarkChatSeen marks the new-message notifications of a chat as seen
func (h *NotificationHandler) MarkChatSeen(c echo.Context) error {
	chatID, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid chat ID")
	}
	if err := h.notificationUC.MarkChatSeen(c.Request().Context(), chatID); err != nil {
		return utils.UpstreamErrorResponse(c, err, "Failed to mark chat as seen")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Chat marked as seen", nil)
}

func orEmpty(list []models.Notification) []models.Notification {
	if list == nil {
		return []models.Notification{}
	}
	return list
}

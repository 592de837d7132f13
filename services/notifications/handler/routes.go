package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/services/notifications"
	httpHandler "github.com/piresc/chatsync/services/notifications/handler/http"
)

// Handler combines the HTTP handlers of the notifications service
type Handler struct {
	notificationHTTP *httpHandler.NotificationHandler
}

// NewHandler creates a new combined handler
func NewHandler(notificationUC notifications.NotificationUC) *Handler {
	return &Handler{
		notificationHTTP: httpHandler.NewNotificationHandler(notificationUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/notifications")
	group.GET("", h.notificationHTTP.GetNotifications)
	group.PUT("/friend-requests/seen", h.notificationHTTP.MarkFriendRequestsSeen)
	group.GET("/chats/:id", h.notificationHTTP.GetChatUnseen)
	group.PUT("/chats/:id/seen", h.notificationHTTP.MarkChatSeen)
}

package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/services/chat"
	httpHandler "github.com/piresc/chatsync/services/chat/handler/http"
)

// Handler combines the HTTP handlers of the chat service
type Handler struct {
	chatHTTP *httpHandler.ChatHandler
}

// NewHandler creates a new combined handler
func NewHandler(chatUC chat.ChatUC, opener httpHandler.ChatOpener, loc *time.Location) *Handler {
	return &Handler{
		chatHTTP: httpHandler.NewChatHandler(chatUC, opener, loc),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/me", h.chatHTTP.GetMe)

	chatGroup := e.Group("/chats")
	chatGroup.GET("", h.chatHTTP.ListChats)
	chatGroup.POST("/:id/open", h.chatHTTP.OpenChat)
	chatGroup.GET("/:id/messages", h.chatHTTP.GetMessages)
	chatGroup.POST("/:id/messages", h.chatHTTP.SendMessage)
	chatGroup.PUT("/:id/name", h.chatHTTP.RenameChat)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/utils"
	"github.com/piresc/chatsync/services/chat"
	"github.com/piresc/chatsync/services/chat/usecase"
)

// ChatOpener opens a chat together with its socket
type ChatOpener interface {
	OpenChat(ctx context.Context, chatID int64) (*models.ChatDetail, error)
}

// ChatHandler handles HTTP requests for the chat read model
type ChatHandler struct {
	chatUC chat.ChatUC
	opener ChatOpener
	loc    *time.Location
}

// NewChatHandler creates a new chat HTTP handler. Messages are grouped
// by calendar day in loc, nil means local time.
func NewChatHandler(chatUC chat.ChatUC, opener ChatOpener, loc *time.Location) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
		opener: opener,
		loc:    loc,
	}
}

// SendMessageRequest is the body of POST /chats/:id/messages
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// RenameChatRequest is the body of PUT /chats/:id/name
type RenameChatRequest struct {
	NewName string `json:"newName" validate:"min=6,max=32"`
}

// OpenChatResponse is the open chat with its grouped messages
type OpenChatResponse struct {
	Chat     models.Chat        `json:"chat"`
	Messages []models.Message   `json:"messages"`
	Days     []usecase.DayGroup `json:"days"`
}

// GetMe returns the logged in user
func (h *ChatHandler) GetMe(c echo.Context) error {
	user, ok := h.chatUC.LocalUser()
	if !ok {
		return utils.NotFoundResponse(c, "Local user is not known yet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Local user", user)
}

// ListChats returns the cached chat list, refetched with ?refresh=true
func (h *ChatHandler) ListChats(c echo.Context) error {
	if c.QueryParam("refresh") == "true" {
		if _, err := h.chatUC.RefreshChats(c.Request().Context()); err != nil {
			logger.Warn("Failed to refresh chats", logger.Err(err))
			return utils.UpstreamErrorResponse(c, err, "Failed to refresh chats")
		}
	}
	chats := h.chatUC.Chats()
	if chats == nil {
		chats = []models.Chat{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Chats", chats)
}

// OpenChat makes a chat the open chat and connects its socket
func (h *ChatHandler) OpenChat(c echo.Context) error {
	chatID, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid chat ID")
	}

	if _, err := h.opener.OpenChat(c.Request().Context(), chatID); err != nil {
		logger.Warn("Failed to open chat",
			logger.ChatID(chatID),
			logger.Err(err))
		return utils.UpstreamErrorResponse(c, err, "Failed to open chat")
	}
	return h.respondCurrent(c, chatID, http.StatusOK)
}

// GetMessages returns the reconciled messages of the open chat
func (h *ChatHandler) GetMessages(c echo.Context) error {
	chatID, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid chat ID")
	}
	return h.respondCurrent(c, chatID, http.StatusOK)
}

// SendMessage adds an optimistic message and posts it in the background
func (h *ChatHandler) SendMessage(c echo.Context) error {
	chatID, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid chat ID")
	}

	var req SendMessageRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	placeholder, err := h.chatUC.SendMessage(c.Request().Context(), chatID, req.Text)
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, usecase.ErrChatNotOpen):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, usecase.ErrNoLocalUser):
		return utils.ConflictResponse(c, err.Error())
	case err != nil:
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Message queued", placeholder)
}

// RenameChat renames a chat
func (h *ChatHandler) RenameChat(c echo.Context) error {
	chatID, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid chat ID")
	}

	var req RenameChatRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	err := h.chatUC.RenameChat(c.Request().Context(), chatID, req.NewName)
	switch {
	case errors.Is(err, usecase.ErrChatNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, usecase.ErrEmptyChatName):
		return utils.BadRequestResponse(c, err.Error())
	case err != nil:
		return utils.UpstreamErrorResponse(c, err, "Failed to rename chat")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Chat name updated", nil)
}

func (h *ChatHandler) respondCurrent(c echo.Context, chatID int64, status int) error {
	detail, ok := h.chatUC.CurrentChat()
	if !ok || detail.ID != chatID {
		return utils.NotFoundResponse(c, "Chat is not open")
	}
	messages := detail.Messages
	if messages == nil {
		messages = []models.Message{}
	}
	return utils.SuccessResponse(c, status, "Chat", OpenChatResponse{
		Chat:     detail.Chat,
		Messages: messages,
		Days:     usecase.GroupMessages(messages, h.loc),
	})
}

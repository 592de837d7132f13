package http

import (
	"context"
	"fmt"

	"github.com/piresc/chatsync/internal/pkg/constants"
	httpclient "github.com/piresc/chatsync/internal/pkg/http"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/services/chat"
)

// ChatGW talks to the chat endpoints of the REST API
type ChatGW struct {
	client *httpclient.Client
}

// NewChatGW creates a chat gateway on top of the shared REST client
func NewChatGW(client *httpclient.Client) chat.ChatGW {
	return &ChatGW{client: client}
}

// GetLoggedInUser fetches the user the session tokens belong to
func (g *ChatGW) GetLoggedInUser(ctx context.Context) (*models.User, error) {
	var resp models.LoggedInUserResponse
	if err := g.client.GetJSON(ctx, constants.PathLoggedInUser, &resp); err != nil {
		return nil, fmt.Errorf("failed to get logged in user: %w", err)
	}
	return &resp.User, nil
}

// GetChats fetches every chat the user is a member of
func (g *ChatGW) GetChats(ctx context.Context) ([]models.Chat, error) {
	var resp models.GetChatsResponse
	if err := g.client.GetJSON(ctx, constants.PathChats, &resp); err != nil {
		return nil, fmt.Errorf("failed to get chats: %w", err)
	}
	if resp.Chats == nil {
		resp.Chats = []models.Chat{}
	}
	return resp.Chats, nil
}

// GetChat fetches a chat with its messages, newest first
func (g *ChatGW) GetChat(ctx context.Context, chatID int64) (*models.ChatDetail, error) {
	var detail models.ChatDetail
	if err := g.client.GetJSON(ctx, fmt.Sprintf(constants.PathChat, chatID), &detail); err != nil {
		return nil, fmt.Errorf("failed to get chat %d: %w", chatID, err)
	}
	return &detail, nil
}

// SendMessage posts a message. The created message arrives over the
// chat socket, so the response body is not decoded.
func (g *ChatGW) SendMessage(ctx context.Context, chatID int64, text string) error {
	req := models.SendMessageRequest{Text: text}
	if err := g.client.PostJSON(ctx, fmt.Sprintf(constants.PathChatMessages, chatID), req, nil); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}

// UpdateChatName renames a chat
func (g *ChatGW) UpdateChatName(ctx context.Context, chatID int64, name string) error {
	req := models.UpdateChatNameRequest{NewName: name}
	var resp models.SuccessMessageResponse
	if err := g.client.PutJSON(ctx, fmt.Sprintf(constants.PathChatUpdateName, chatID), req, &resp); err != nil {
		return fmt.Errorf("failed to rename chat %d: %w", chatID, err)
	}
	return nil
}

package chat

import (
	"context"

	"github.com/piresc/chatsync/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/chatsync/services/chat ChatGW

// ChatGW defines the chat REST gateway interface
type ChatGW interface {
	GetLoggedInUser(ctx context.Context) (*models.User, error)
	GetChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, chatID int64) (*models.ChatDetail, error)
	SendMessage(ctx context.Context, chatID int64, text string) error
	UpdateChatName(ctx context.Context, chatID int64, name string) error
}

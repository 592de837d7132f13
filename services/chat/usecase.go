package chat

import (
	"context"

	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chatsync/services/chat ChatUC

// ChatUC owns the chat list, the open chat and its reconciled messages
type ChatUC interface {
	// local user
	LoadLocalUser(ctx context.Context) (*models.User, error)
	SetLocalUser(user models.User)
	LocalUser() (models.User, bool)

	// chat list
	RefreshChats(ctx context.Context) ([]models.Chat, error)
	Chats() []models.Chat
	HasChat(chatID int64) bool
	RenameChat(ctx context.Context, chatID int64, name string) error

	// open chat
	OpenChat(ctx context.Context, chatID int64) (*models.ChatDetail, error)
	CloseChat()
	CurrentChat() (models.ChatDetail, bool)
	SendMessage(ctx context.Context, chatID int64, text string) (*models.Message, error)

	// socket frames of /chats/{id}
	HandleFrame(chatID int64, frame frames.Frame)
}

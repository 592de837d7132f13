package usecase

import (
	"sync"
	"time"

	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/notice"
	"github.com/piresc/chatsync/services/chat"
)

// Notifier surfaces transient notices to the user
type Notifier interface {
	Error(message string) notice.Notice
}

// openChat is the chat whose socket is live
type openChat struct {
	chat     models.Chat
	messages *MessageList
}

// ChatUC implements chat.ChatUC
type ChatUC struct {
	chatGW   chat.ChatGW
	notifier Notifier
	seq      *Sentinels
	now      func() time.Time

	mu        sync.RWMutex
	localUser *models.User
	chats     []models.Chat
	current   *openChat

	inflight sync.WaitGroup
}

// NewChatUC creates a new chat usecase instance
func NewChatUC(chatGW chat.ChatGW, notifier Notifier) *ChatUC {
	return &ChatUC{
		chatGW:   chatGW,
		notifier: notifier,
		seq:      &Sentinels{},
		now:      models.Now,
	}
}

// Wait blocks until every in-flight message send has completed
func (uc *ChatUC) Wait() {
	uc.inflight.Wait()
}

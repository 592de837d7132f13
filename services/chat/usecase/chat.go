package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/utils"
)

var (
	ErrNoLocalUser   = errors.New("local user is not known")
	ErrChatNotOpen   = errors.New("chat is not open")
	ErrEmptyMessage  = errors.New("message text is empty")
	ErrChatNotFound  = errors.New("chat not found")
	ErrEmptyChatName = errors.New("chat name is empty")
)

// LoadLocalUser fetches the logged in user and remembers it
func (uc *ChatUC) LoadLocalUser(ctx context.Context) (*models.User, error) {
	user, err := uc.chatGW.GetLoggedInUser(ctx)
	if err != nil {
		return nil, err
	}
	uc.SetLocalUser(*user)
	return user, nil
}

// SetLocalUser sets the author used for optimistic messages
func (uc *ChatUC) SetLocalUser(user models.User) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.localUser = &user
}

// LocalUser returns the logged in user
func (uc *ChatUC) LocalUser() (models.User, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.localUser == nil {
		return models.User{}, false
	}
	return *uc.localUser, true
}

// RefreshChats refetches the chat list
func (uc *ChatUC) RefreshChats(ctx context.Context) ([]models.Chat, error) {
	chats, err := uc.chatGW.GetChats(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.chats = chats
	uc.mu.Unlock()

	logger.Debug("Chat list refreshed",
		logger.Int("chats", len(chats)))
	return chats, nil
}

// Chats returns the cached chat list
func (uc *ChatUC) Chats() []models.Chat {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.chats
}

// HasChat reports whether chatID is in the cached chat list
func (uc *ChatUC) HasChat(chatID int64) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, c := range uc.chats {
		if c.ID == chatID {
			return true
		}
	}
	return false
}

// OpenChat loads a chat snapshot and makes it the open chat. Reopening
// the chat that is already open keeps its pending placeholders.
func (uc *ChatUC) OpenChat(ctx context.Context, chatID int64) (*models.ChatDetail, error) {
	detail, err := uc.chatGW.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	var messages *MessageList
	if uc.current != nil && uc.current.chat.ID == chatID {
		messages = uc.current.messages
		messages.Reload(detail.Messages)
	} else {
		messages = NewMessageList(uc.seq, detail.Messages)
	}
	uc.current = &openChat{
		chat:     detail.Chat,
		messages: messages,
	}
	uc.mu.Unlock()

	logger.Info("Chat opened",
		logger.ChatID(chatID),
		logger.Int("messages", len(detail.Messages)))
	return detail, nil
}

// CloseChat forgets the open chat. Late send failures for it only raise a notice.
func (uc *ChatUC) CloseChat() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.current = nil
}

// CurrentChat returns the open chat with its current messages
func (uc *ChatUC) CurrentChat() (models.ChatDetail, bool) {
	uc.mu.RLock()
	if uc.current == nil {
		uc.mu.RUnlock()
		return models.ChatDetail{}, false
	}
	header, messages := uc.current.chat, uc.current.messages
	uc.mu.RUnlock()

	return models.ChatDetail{
		Chat:     header,
		Messages: messages.Snapshot(),
	}, true
}

func (uc *ChatUC) openChatFor(chatID int64) (*openChat, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.current == nil || uc.current.chat.ID != chatID {
		return nil, false
	}
	return uc.current, true
}

// SendMessage shows the message at once as a placeholder and posts it
// in the background. Only the chat socket confirms the placeholder; a
// failed post removes it and raises a notice. Nothing is retried.
func (uc *ChatUC) SendMessage(ctx context.Context, chatID int64, text string) (*models.Message, error) {
	text = utils.SanitizeMessage(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	author, ok := uc.LocalUser()
	if !ok {
		return nil, ErrNoLocalUser
	}
	current, ok := uc.openChatFor(chatID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrChatNotOpen, chatID)
	}

	placeholder := current.messages.AddOptimistic(text, author, uc.now())

	// The post outlives the caller: closing the chat does not cancel it.
	sendCtx := context.WithoutCancel(ctx)
	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		uc.completeSend(sendCtx, current.chat.ID, placeholder)
	}()

	return &placeholder, nil
}

// completeSend posts the message. A failure always raises a notice; the
// placeholder is removed only while its chat is still open.
func (uc *ChatUC) completeSend(ctx context.Context, chatID int64, placeholder models.Message) {
	err := uc.chatGW.SendMessage(ctx, chatID, placeholder.Text)
	if err == nil {
		return
	}

	removed := false
	if current, ok := uc.openChatFor(chatID); ok {
		removed = current.messages.Fail(placeholder.ID)
	}
	logger.Warn("Failed to send message",
		logger.ChatID(chatID),
		logger.Int64("placeholder_id", placeholder.ID),
		logger.Bool("placeholder_removed", removed),
		logger.Err(err))
	if uc.notifier != nil {
		uc.notifier.Error(constants.NoticeSendFailed)
	}
}

// HandleFrame applies a frame pushed on the socket of chatID. Frames of
// a chat that is no longer open are dropped.
func (uc *ChatUC) HandleFrame(chatID int64, frame frames.Frame) {
	switch frame.Kind {
	case frames.NewMessage:
		current, ok := uc.openChatFor(chatID)
		if !ok {
			return
		}
		localID := int64(0)
		if user, ok := uc.LocalUser(); ok {
			localID = user.ID
		}
		result := current.messages.Confirm(frame.Message, localID)
		logger.Debug("Chat message received",
			logger.ChatID(chatID),
			logger.Int64("message_id", frame.Message.ID),
			logger.String("result", result.String()))
	case frames.ChatRenamed:
		if _, ok := uc.openChatFor(chatID); !ok {
			return
		}
		uc.applyName(chatID, frame.NewName)
	}
}

// RenameChat renames a chat optimistically and rolls back when the API
// rejects the new name
func (uc *ChatUC) RenameChat(ctx context.Context, chatID int64, name string) error {
	name = utils.SanitizeMessage(name)
	if name == "" {
		return ErrEmptyChatName
	}
	previous, ok := uc.chatName(chatID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrChatNotFound, chatID)
	}

	uc.applyName(chatID, name)
	if err := uc.chatGW.UpdateChatName(ctx, chatID, name); err != nil {
		if current, ok := uc.chatName(chatID); ok && current == name {
			uc.applyName(chatID, previous)
		}
		logger.Warn("Failed to rename chat",
			logger.ChatID(chatID),
			logger.Err(err))
		if uc.notifier != nil {
			uc.notifier.Error(constants.NoticeRenameFailed)
		}
		return err
	}
	return nil
}

func (uc *ChatUC) chatName(chatID int64) (string, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.current != nil && uc.current.chat.ID == chatID {
		return uc.current.chat.Name, true
	}
	for _, c := range uc.chats {
		if c.ID == chatID {
			return c.Name, true
		}
	}
	return "", false
}

// applyName writes name into the chat list and the open chat
func (uc *ChatUC) applyName(chatID int64, name string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.current != nil && uc.current.chat.ID == chatID {
		uc.current.chat.Name = name
	}

	for i, c := range uc.chats {
		if c.ID != chatID {
			continue
		}
		next := make([]models.Chat, len(uc.chats))
		copy(next, uc.chats)
		next[i].Name = name
		uc.chats = next
		break
	}
}

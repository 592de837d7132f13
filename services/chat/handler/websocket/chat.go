package websocket

import (
	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/notice"
	ws "github.com/piresc/chatsync/internal/pkg/websocket"
	"github.com/piresc/chatsync/internal/utils"
	"github.com/piresc/chatsync/services/chat"
)

// Notifier surfaces transient notices to the user
type Notifier interface {
	Error(message string) notice.Notice
}

// ChatHandler routes frames of a /chats/{id} socket into the chat usecase
type ChatHandler struct {
	chatUC   chat.ChatUC
	notifier Notifier
}

// NewChatHandler creates a new chat socket handler
func NewChatHandler(chatUC chat.ChatUC, notifier Notifier) *ChatHandler {
	return &ChatHandler{
		chatUC:   chatUC,
		notifier: notifier,
	}
}

// Frames returns the frame handler bound to the socket of chatID
func (h *ChatHandler) Frames(chatID int64) ws.FrameHandler {
	return func(frame frames.Frame) {
		switch frame.Kind {
		case frames.NewMessage, frames.ChatRenamed:
			h.chatUC.HandleFrame(chatID, frame)
		case frames.UnknownType:
			// already logged by the classifier
		default:
			logger.Debug("Ignoring frame on chat socket",
				logger.ChatID(chatID),
				logger.String("kind", frame.Kind.String()),
				logger.String("payload", utils.Truncate(string(frame.Raw), 120)))
		}
	}
}

// Listeners returns the lifecycle callbacks of the socket of chatID
func (h *ChatHandler) Listeners(chatID int64) ws.Listeners {
	return ws.Listeners{
		OnOpen: func() {
			logger.Info("Chat socket open", logger.ChatID(chatID))
		},
		OnClose: func(err error) {
			logger.Warn("Chat socket closed",
				logger.ChatID(chatID),
				logger.Err(err))
		},
		OnError: func(err error) {
			logger.Error("Chat socket failed",
				logger.ChatID(chatID),
				logger.Err(err))
			if h.notifier != nil {
				h.notifier.Error(constants.NoticeChatSocket)
			}
		},
	}
}

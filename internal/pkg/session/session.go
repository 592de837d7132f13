package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/piresc/chatsync/internal/pkg/constants"
	httpclient "github.com/piresc/chatsync/internal/pkg/http"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/notice"
	"github.com/piresc/chatsync/internal/pkg/tokenstore"
	ws "github.com/piresc/chatsync/internal/pkg/websocket"
)

var (
	ErrClosed     = errors.New("session is closed")
	ErrNotStarted = errors.New("session is not started")
)

// Chats is the slice of the chat usecase the session drives
type Chats interface {
	LoadLocalUser(ctx context.Context) (*models.User, error)
	SetLocalUser(user models.User)
	RefreshChats(ctx context.Context) ([]models.Chat, error)
	OpenChat(ctx context.Context, chatID int64) (*models.ChatDetail, error)
	CloseChat()
}

// Notifications is the slice of the notification usecase the session drives
type Notifications interface {
	Load(ctx context.Context) error
}

// ChatSockets builds the callbacks of a /chats/{id} socket
type ChatSockets interface {
	Frames(chatID int64) ws.FrameHandler
	Listeners(chatID int64) ws.Listeners
}

// NotificationSockets builds the callbacks of the /notifications socket
type NotificationSockets interface {
	Frames(ctx context.Context) ws.FrameHandler
	Listeners() ws.Listeners
}

// Deps are the collaborators a session owns
type Deps struct {
	Tokens              *tokenstore.Store
	Manager             *ws.Manager
	Chats               Chats
	Notifications       Notifications
	ChatSockets         ChatSockets
	NotificationSockets NotificationSockets
	Notices             *notice.Board
}

// Session ties the token store, the socket manager and the usecases of
// one logged in user together. Close is its single teardown.
type Session struct {
	deps Deps

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	chatSub *ws.Subscription
	chatID  int64
	closed  bool
}

// New creates a session. Nothing is fetched or dialed until Start.
func New(deps Deps) *Session {
	return &Session{deps: deps}
}

// Start restores persisted tokens, loads the snapshots and subscribes
// the notifications socket. Snapshot failures are logged and surfaced
// as notices; an expired session is returned to the caller.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	}
	runCtx := s.ctx
	s.mu.Unlock()

	if restored, err := s.deps.Tokens.Restore(ctx); err != nil {
		logger.Warn("Failed to restore session tokens", logger.Err(err))
	} else if restored {
		logger.Info("Session tokens restored")
	}

	if err := s.loadLocalUser(ctx); err != nil {
		return err
	}

	if _, err := s.deps.Chats.RefreshChats(ctx); err != nil {
		logger.Warn("Failed to load chats", logger.Err(err))
	}
	if err := s.deps.Notifications.Load(ctx); err != nil {
		logger.Warn("Failed to load notifications", logger.Err(err))
		if s.deps.Notices != nil {
			s.deps.Notices.Error(constants.NoticeLoadFailed)
		}
	}

	s.deps.Manager.Subscribe(runCtx,
		constants.SubscriberNotifications,
		constants.WSPathNotifications,
		s.deps.NotificationSockets.Frames(runCtx),
		s.deps.NotificationSockets.Listeners())

	logger.Info("Session started")
	return nil
}

// loadLocalUser asks the API for the local user and falls back to the
// access token claims when the API is unreachable
func (s *Session) loadLocalUser(ctx context.Context) error {
	user, err := s.deps.Chats.LoadLocalUser(ctx)
	if err == nil {
		logger.Info("Local user loaded",
			logger.Int64("user_id", user.ID),
			logger.String("username", user.Username))
		return nil
	}
	if httpclient.IsUnauthorized(err) {
		return fmt.Errorf("session expired: %w", err)
	}

	claims, claimsErr := tokenstore.Inspect(s.deps.Tokens.Credentials().AccessToken)
	if claimsErr != nil || claims.UserID == 0 {
		logger.Warn("Local user unknown", logger.Err(err))
		return nil
	}
	s.deps.Chats.SetLocalUser(models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	})
	logger.Warn("Local user taken from access token claims",
		logger.Int64("user_id", claims.UserID),
		logger.Err(err))
	return nil
}

// OpenChat loads a chat and moves the chat socket onto it. The socket
// of the previously open chat is closed before the new one is dialed.
func (s *Session) OpenChat(ctx context.Context, chatID int64) (*models.ChatDetail, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.ctx == nil {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}
	s.mu.Unlock()

	detail, err := s.deps.Chats.OpenChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if s.chatSub != nil {
		if s.chatID == chatID {
			return detail, nil
		}
		s.chatSub.Close()
	}
	s.chatID = chatID
	s.chatSub = s.deps.Manager.Subscribe(s.ctx,
		fmt.Sprintf(constants.SubscriberChat, chatID),
		fmt.Sprintf(constants.WSPathChat, chatID),
		s.deps.ChatSockets.Frames(chatID),
		s.deps.ChatSockets.Listeners(chatID))
	return detail, nil
}

// CloseChat closes the chat socket and forgets the open chat
func (s *Session) CloseChat() {
	s.mu.Lock()
	sub := s.chatSub
	s.chatSub, s.chatID = nil, 0
	s.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
	s.deps.Chats.CloseChat()
}

// OpenChatID returns the chat whose socket is subscribed, 0 for none
func (s *Session) OpenChatID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatID
}

// Close tears down every socket. In-flight REST calls are left to finish.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel := s.cancel
	s.chatSub, s.chatID = nil, 0
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.deps.Manager.Close()
	s.deps.Chats.CloseChat()
	logger.Info("Session closed")
}

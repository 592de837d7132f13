package websocket

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/piresc/chatsync/internal/pkg/constants"
	appcontext "github.com/piresc/chatsync/internal/pkg/context"
	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/tokenstore"
)

var (
	ErrIncompleteCredentials = errors.New("access and refresh token are both required")
	ErrInvalidURL            = errors.New("invalid websocket url")
)

// TokenStore is the credential source the manager reads and rotates
type TokenStore interface {
	Credentials() models.Credentials
	Set(creds models.Credentials) bool
	Subscribe() (<-chan models.Credentials, func())
}

// FrameHandler receives classified frames other than token rotations
type FrameHandler func(frame frames.Frame)

// Manager opens client sockets authenticated with the session tokens
// and keeps at most one live socket per subscriber.
type Manager struct {
	wsBase string
	tokens TokenStore
	dialer Dialer

	mu   sync.Mutex
	subs map[string]*Subscription
}

// NewManager creates a websocket manager. A nil dialer uses gorilla.
func NewManager(wsBase string, tokens TokenStore, dialer Dialer) *Manager {
	if dialer == nil {
		dialer = NewDialer(defaultHandshakeTimeout)
	}
	return &Manager{
		wsBase: wsBase,
		tokens: tokens,
		dialer: dialer,
		subs:   make(map[string]*Subscription),
	}
}

// URL builds <ws-base><path>?accessToken=..&refreshToken=..
func (m *Manager) URL(path string, creds models.Credentials) (string, error) {
	u, err := url.Parse(m.wsBase + path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	q := u.Query()
	q.Set(constants.QueryAccessToken, creds.AccessToken)
	q.Set(constants.QueryRefreshToken, creds.RefreshToken)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Connect opens a socket on path. It returns nil and calls onError once
// when either token is empty, when the URL is malformed or when the dial
// fails. Nothing is retried. On success the connection is Connecting
// until Listen is called.
func (m *Manager) Connect(ctx context.Context, path string, creds models.Credentials, onError func(error)) *Connection {
	fail := func(err error) *Connection {
		if onError != nil {
			onError(err)
		}
		return nil
	}

	if !creds.Complete() {
		return fail(ErrIncompleteCredentials)
	}
	wsURL, err := m.URL(path, creds)
	if err != nil {
		return fail(err)
	}

	c := newConnection(path)
	if err := c.setState(StateConnecting); err != nil {
		return fail(err)
	}

	start := time.Now()
	conn, resp, err := m.dialer.DialContext(ctx, wsURL, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		_ = c.setState(StateIdle)
		logger.Warn("Websocket dial failed",
			logger.Subscriber(appcontext.GetSubscriber(ctx)),
			logger.String("connection_id", c.id),
			logger.String("path", path),
			logger.Err(err))
		return fail(fmt.Errorf("failed to connect to %s: %w", path, err))
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	logger.Debug("Websocket dialed",
		logger.Subscriber(appcontext.GetSubscriber(ctx)),
		logger.String("connection_id", c.id),
		logger.String("path", path),
		logger.Duration("latency", time.Since(start)))
	return c
}

// HandleMessage wraps cb so every frame is classified first. Token
// rotations update the token store and are not forwarded; every other
// kind, Ignored included, reaches cb.
func (m *Manager) HandleMessage(cb FrameHandler) RawHandler {
	return func(data []byte) {
		frame := frames.Classify(frames.Parse(data))
		if frame.Kind == frames.TokenRotation {
			m.rotate(frame.Credentials)
			return
		}
		if cb != nil {
			cb(frame)
		}
	}
}

func (m *Manager) rotate(creds models.Credentials) {
	changed := m.tokens.Set(creds)

	fields := []logger.Field{logger.Bool("changed", changed)}
	if claims, err := tokenstore.Inspect(creds.AccessToken); err == nil {
		fields = append(fields, logger.Int64("user_id", claims.UserID))
		if left, err := claims.ExpiresIn(time.Now()); err == nil {
			fields = append(fields, logger.Duration("expires_in", left))
		}
	}
	logger.Info("Session tokens rotated", fields...)
}

// Subscribe keeps one socket for name open on path, reconnecting
// whenever the credentials or the path change. A previous subscription
// with the same name is closed first.
func (m *Manager) Subscribe(ctx context.Context, name, path string, handler FrameHandler, l Listeners) *Subscription {
	m.mu.Lock()
	old := m.subs[name]
	delete(m.subs, name)
	m.mu.Unlock()
	if old != nil {
		old.Close()
	}

	sub := newSubscription(m, name, path, handler, l)

	m.mu.Lock()
	m.subs[name] = sub
	m.mu.Unlock()

	sub.start(ctx)
	return sub
}

// Subscription returns the live subscription called name
func (m *Manager) Subscription(name string) (*Subscription, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[name]
	return sub, ok
}

func (m *Manager) forget(sub *Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.subs[sub.name] == sub {
		delete(m.subs, sub.name)
	}
}

// Close tears down every subscription
func (m *Manager) Close() {
	m.mu.Lock()
	subs := make([]*Subscription, 0, len(m.subs))
	for _, sub := range m.subs {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

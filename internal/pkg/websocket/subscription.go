package websocket

import (
	"context"
	"sync"

	appcontext "github.com/piresc/chatsync/internal/pkg/context"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
)

// Subscription is the socket of one subscriber, such as the notification
// stream or the open chat. The live socket is always closed before its
// replacement is dialed.
type Subscription struct {
	name    string
	manager *Manager
	handler FrameHandler
	l       Listeners

	mu     sync.Mutex
	ctx    context.Context
	path   string
	creds  models.Credentials
	conn   *Connection
	closed bool
	// attempted is set once the current creds and path have been tried
	attempted bool

	unsubscribe func()
	done        chan struct{}

	// cancelMu is separate from mu so Close can abort a dial in progress
	cancelMu sync.Mutex
	cancel   context.CancelFunc
	stopped  bool
}

func newSubscription(m *Manager, name, path string, handler FrameHandler, l Listeners) *Subscription {
	return &Subscription{
		name:    name,
		manager: m,
		handler: handler,
		l:       l,
		path:    path,
		done:    make(chan struct{}),
	}
}

// Name returns the subscriber name
func (s *Subscription) Name() string {
	return s.name
}

// Path returns the current path
func (s *Subscription) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// State returns the state of the live socket, Idle when there is none
func (s *Subscription) State() State {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return StateIdle
	}
	return conn.State()
}

// Done is closed once the subscription stops watching the credentials
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Connection returns the live socket, nil when Idle
func (s *Subscription) Connection() *Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Subscription) start(ctx context.Context) {
	ctx, cancel := context.WithCancel(appcontext.WithSubscriber(ctx, s.name))
	updates, unsubscribe := s.manager.tokens.Subscribe()

	s.cancelMu.Lock()
	s.cancel = cancel
	if s.stopped {
		cancel()
	}
	s.cancelMu.Unlock()

	s.mu.Lock()
	s.ctx = ctx
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	s.reconnect(s.manager.tokens.Credentials(), s.Path())
	go s.watch(ctx, updates)
}

func (s *Subscription) watch(ctx context.Context, updates <-chan models.Credentials) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case creds, ok := <-updates:
			if !ok {
				return
			}
			s.reconnect(creds, s.Path())
		}
	}
}

func (s *Subscription) isStopped() bool {
	s.cancelMu.Lock()
	defer s.cancelMu.Unlock()
	return s.stopped
}

// SetPath moves the subscription to another path
func (s *Subscription) SetPath(path string) {
	s.reconnect(s.manager.tokens.Credentials(), path)
}

// reconnect closes the live socket and opens a new one when either the
// credentials or the path changed identity. Callbacks run unlocked.
func (s *Subscription) reconnect(creds models.Credentials, path string) {
	conn, err := s.swap(creds, path)
	if err != nil {
		if s.isStopped() {
			logger.Debug("Websocket dial aborted by close",
				logger.Subscriber(s.name),
				logger.Err(err))
			return
		}
		if s.l.OnError != nil {
			s.l.OnError(err)
		}
		return
	}
	if conn == nil {
		return
	}

	l := s.l
	l.OnMessage = s.manager.HandleMessage(s.handler)
	if err := conn.Listen(l); err != nil {
		// replaced before it opened
		logger.Debug("Websocket listener not started",
			logger.Subscriber(s.name),
			logger.Err(err))
	}
}

// swap tears down the live socket and dials the replacement while
// holding the lock, so two sockets of one subscriber never overlap.
func (s *Subscription) swap(creds models.Credentials, path string) (*Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, nil
	}
	if s.attempted && s.creds == creds && s.path == path {
		return nil, nil
	}

	if s.conn != nil {
		if creds.Complete() {
			s.conn.Close()
		} else {
			s.conn.closeTo(StateIdle)
		}
		s.conn = nil
	}
	s.attempted = true
	s.creds = creds
	s.path = path

	if !creds.Complete() {
		logger.Info("Websocket subscription idle, no credentials",
			logger.Subscriber(s.name))
		return nil, nil
	}

	var dialErr error
	conn := s.manager.Connect(s.ctx, path, creds, func(err error) { dialErr = err })
	if conn == nil {
		return nil, dialErr
	}
	s.conn = conn
	return conn, nil
}

// Close closes the live socket and stops watching the credentials. A
// dial in progress is aborted first.
func (s *Subscription) Close() {
	s.cancelMu.Lock()
	s.stopped = true
	cancel := s.cancel
	s.cancelMu.Unlock()
	if cancel != nil {
		cancel()
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	conn := s.conn
	s.conn = nil
	unsubscribe := s.unsubscribe
	s.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
	if unsubscribe != nil {
		unsubscribe()
	}
	s.manager.forget(s)

	logger.Debug("Websocket subscription closed",
		logger.Subscriber(s.name))
}

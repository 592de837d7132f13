package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/piresc/chatsync/internal/pkg/logger"
)

const inboundBufferSize = 64

// RawHandler receives the text payload of every inbound frame
type RawHandler func(data []byte)

// Listeners are the callbacks attached to a live connection
type Listeners struct {
	OnOpen    func()
	OnMessage RawHandler
	// OnClose fires on remote close or read failure, never on Close()
	OnClose func(err error)
	// OnError receives transport errors of connection attempts
	OnError func(err error)
}

type inbound struct {
	data []byte
	err  error
}

// Connection is one client socket. Frames are dispatched one at a time
// in arrival order by a single goroutine.
type Connection struct {
	id   string
	path string

	mu        sync.Mutex
	state     State
	conn      Conn
	listeners Listeners

	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(path string) *Connection {
	return &Connection{
		id:    uuid.New().String(),
		path:  path,
		state: StateIdle,
		done:  make(chan struct{}),
	}
}

// ID returns the connection id used in logs
func (c *Connection) ID() string {
	return c.id
}

// Path returns the path the connection was opened on
func (c *Connection) Path() string {
	return c.path
}

// State returns the current lifecycle state
func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connection) setState(to State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setStateLocked(to)
}

func (c *Connection) setStateLocked(to State) error {
	if err := transition(c.state, to); err != nil {
		return err
	}
	c.state = to
	return nil
}

// Listen attaches listeners, marks the connection open and starts
// delivering frames. It may be called once, right after Connect.
func (c *Connection) Listen(l Listeners) error {
	c.mu.Lock()
	if err := c.setStateLocked(StateOpen); err != nil {
		c.mu.Unlock()
		return err
	}
	c.listeners = l
	conn := c.conn
	c.mu.Unlock()

	logger.Info("Websocket connection open",
		logger.String("connection_id", c.id),
		logger.String("path", c.path))

	if l.OnOpen != nil {
		l.OnOpen()
	}

	ch := make(chan inbound, inboundBufferSize)
	go c.read(conn, ch)
	go c.dispatch(ch)
	return nil
}

// read feeds ch until the socket fails. The error is delivered last.
func (c *Connection) read(conn Conn, ch chan<- inbound) {
	for {
		typ, data, err := conn.ReadMessage()
		if err == nil && typ != websocket.TextMessage {
			continue
		}
		select {
		case ch <- inbound{data: data, err: err}:
		case <-c.done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (c *Connection) dispatch(ch <-chan inbound) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-ch:
			if msg.err != nil {
				c.remoteClosed(msg.err)
				return
			}
			c.mu.Lock()
			onMessage := c.listeners.OnMessage
			c.mu.Unlock()
			if onMessage != nil {
				onMessage(msg.data)
			}
		}
	}
}

func (c *Connection) remoteClosed(err error) {
	c.mu.Lock()
	onClose := c.listeners.OnClose
	stateErr := c.setStateLocked(StateClosed)
	c.mu.Unlock()
	if stateErr != nil {
		return
	}

	c.shutdown()
	logger.Info("Websocket connection closed by remote",
		logger.String("connection_id", c.id),
		logger.String("path", c.path),
		logger.Err(err))

	if onClose != nil {
		onClose(err)
	}
}

// Close removes all listeners and closes the socket. Safe to call twice.
func (c *Connection) Close() {
	c.closeTo(StateClosed)
}

// closeTo tears the connection down into Closed or Idle
func (c *Connection) closeTo(to State) {
	c.mu.Lock()
	c.listeners = Listeners{}
	if c.state != to {
		if err := c.setStateLocked(to); err != nil {
			logger.Debug("Skipping connection state change",
				logger.String("connection_id", c.id),
				logger.Err(err))
		}
	}
	c.mu.Unlock()

	c.shutdown()
}

func (c *Connection) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn == nil {
			return
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err := conn.Close(); err != nil {
			logger.Debug("Error closing websocket",
				logger.String("connection_id", c.id),
				logger.Err(err))
		}
	})
}

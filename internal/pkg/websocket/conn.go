package websocket

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const defaultHandshakeTimeout = 10 * time.Second

// Conn is the subset of *websocket.Conn the client uses, so connections
// can be tested without a real server
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer opens client connections
type Dialer interface {
	DialContext(ctx context.Context, urlStr string, header http.Header) (Conn, *http.Response, error)
}

// GorillaDialer adapts websocket.Dialer to Dialer
type GorillaDialer struct {
	dialer *websocket.Dialer
}

// NewDialer creates a gorilla backed dialer
func NewDialer(handshakeTimeout time.Duration) *GorillaDialer {
	if handshakeTimeout <= 0 {
		handshakeTimeout = defaultHandshakeTimeout
	}
	return &GorillaDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

// DialContext dials urlStr
func (d *GorillaDialer) DialContext(ctx context.Context, urlStr string, header http.Header) (Conn, *http.Response, error) {
	conn, resp, err := d.dialer.DialContext(ctx, urlStr, header)
	if err != nil {
		return nil, resp, err
	}
	return conn, resp, nil
}

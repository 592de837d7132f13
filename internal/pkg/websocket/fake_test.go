package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

var errFakeClosed = errors.New("fake connection closed")

type fakeConn struct {
	frames    chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		frames: make(chan []byte, 16),
		closed: make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case data := <-c.frames:
		return websocket.TextMessage, data, nil
	case <-c.closed:
		return 0, nil, errFakeClosed
	}
}

func (c *fakeConn) WriteMessage(int, []byte) error {
	return nil
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *fakeConn) push(frame string) {
	c.frames <- []byte(frame)
}

type fakeDialer struct {
	mu    sync.Mutex
	err   error
	urls  []string
	conns []*fakeConn
	// overlaps counts dials made while an earlier socket was still open
	overlaps int
}

func (d *fakeDialer) DialContext(ctx context.Context, urlStr string, header http.Header) (Conn, *http.Response, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.urls = append(d.urls, urlStr)
	if d.err != nil {
		return nil, nil, d.err
	}
	for _, c := range d.conns {
		if !c.isClosed() {
			d.overlaps++
		}
	}
	conn := newFakeConn()
	d.conns = append(d.conns, conn)
	return conn, nil, nil
}

func (d *fakeDialer) dials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.urls)
}

func (d *fakeDialer) conn(i int) *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conns[i]
}

func (d *fakeDialer) query(i int) url.Values {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, _ := url.Parse(d.urls[i])
	return u.Query()
}

// hangingDialer blocks every handshake until its context is cancelled
type hangingDialer struct {
	started chan struct{}
	once    sync.Once
}

func (d *hangingDialer) DialContext(ctx context.Context, urlStr string, header http.Header) (Conn, *http.Response, error) {
	d.once.Do(func() { close(d.started) })
	<-ctx.Done()
	return nil, nil, ctx.Err()
}

package tileserver

import (
	"context"
	"net"

	"github.com/coder/websocket"
)

// WebsocketListener implements net.Listener over websocket connections accepted
// by an http handler. Every accepted connection is a binary stream.
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

// NewWSListener returns a listener that stops accepting once ctx is done or Close
// is called. Closing it also closes every connection it handed out.
func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

// push hands c to a pending Accept. It reports false if the listener is closed
// or ctx is done first.
func (l *WebsocketListener) push(ctx context.Context, c *websocket.Conn) bool {
	select {
	case l.ch <- c:
		return true
	case <-l.ctx.Done():
		return false
	case <-ctx.Done():
		return false
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}

package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var connSeq atomic.Uint64

// Conn is one dashboard subscriber.
type Conn struct {
	conn    *websocket.Conn
	id      string
	doneCtx context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
}

// NewConn wraps ws. label (usually the request id) only prefixes the hub key;
// a server-side sequence number keeps keys unique even when clients reuse
// request ids.
func NewConn(ctx context.Context, label string, conn *websocket.Conn) *Conn {
	ctx, cancel := context.WithCancel(ctx)
	return &Conn{
		conn:    conn,
		id:      fmt.Sprintf("%s#%d", label, connSeq.Add(1)),
		doneCtx: ctx,
		cancel:  cancel,
	}
}

func (c *Conn) ID() string { return c.id }

// Done is closed once the connection has been closed.
func (c *Conn) Done() <-chan struct{} { return c.doneCtx.Done() }

// Send writes v as one JSON text frame.
func (c *Conn) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errors.New("connection is nil")
	}
	select {
	case <-c.doneCtx.Done():
		return errors.New("connection closed")
	default:
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}
	return c.conn.WriteJSON(v)
}

// Listen reads and discards client frames until the peer goes away. The
// dashboard stream is one-way; reading keeps control frames flowing.
func (c *Conn) Listen() error {
	for {
		select {
		case <-c.doneCtx.Done():
			return nil
		default:
		}
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
	}
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	if c.conn != nil {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		return c.conn.Close()
	}
	return nil
}

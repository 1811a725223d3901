package socket

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 30 * time.Second
	pingPeriod   = 25 * time.Second
	maxFrameSize = 1 << 16
)

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("socket: connection closed")

// Config carries everything needed to dial the realtime channel.
type Config struct {
	// URL is the ws:// or wss:// endpoint.
	URL string
	// Profile supplies the credentials forwarded in the handshake query.
	Profile domain.Profile
	// Reconnect enables redialing after a dropped connection.
	Reconnect bool
	// RetryDelay is the fixed pause between redial attempts. Defaults to 2s.
	RetryDelay time.Duration
	// ResyncEvent, if set, is emitted after every successful redial so the
	// server replays authoritative state (typically request_game_state).
	ResyncEvent string
	Logger      *zap.Logger
}

// Client is a realtime channel to the game server.
type Client struct {
	cfg       Config
	log       *zap.Logger
	sessionID string

	mu       sync.RWMutex
	conn     *websocket.Conn
	handlers map[string][]domain.EventHandler

	send       chan []byte
	errs       chan error
	closed     chan struct{}
	closeOnce  sync.Once
	writerDone chan struct{} // guarded by mu; closed when the current write pump exits
}

// Dial connects and starts the pumps. The returned client is live until
// Close is called or, with Reconnect off, the connection drops.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	c := &Client{
		cfg:       cfg,
		log:       log,
		sessionID: uuid.NewString(),
		handlers:  make(map[string][]domain.EventHandler),
		send:      make(chan []byte, 64),
		errs:      make(chan error, 8),
		closed:    make(chan struct{}),
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	c.setConn(conn)
	go c.run(c.startWriter(conn))
	return c, nil
}

// On registers a handler for an event. Handlers run on the read loop, in
// registration order, and survive reconnects.
func (c *Client) On(event string, h domain.EventHandler) {
	c.mu.Lock()
	c.handlers[event] = append(c.handlers[event], h)
	c.mu.Unlock()
}

// Emit queues a frame for the write pump. Safe from any goroutine.
func (c *Client) Emit(event string, payload any) error {
	b, err := protocol.Encode(event, payload)
	if err != nil {
		return err
	}
	select {
	case <-c.closed:
		return ErrClosed
	default:
	}
	select {
	case c.send <- b:
		return nil
	case <-c.closed:
		return ErrClosed
	}
}

// Errors reports connection and dispatch problems. The channel is never
// closed; callers treat entries as transient notices.
func (c *Client) Errors() <-chan error {
	return c.errs
}

// Close shuts the channel down. Frames already queued by Emit are flushed
// first, so an emit-then-close caller still delivers its frame. Idempotent.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		if done := c.writerExit(); done != nil {
			select {
			case <-done:
			case <-time.After(writeWait):
			}
		}
		if conn := c.currentConn(); conn != nil {
			_ = conn.Close()
		}
	})
	return nil
}

var _ domain.EventConn = (*Client)(nil)

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, err
	}

	// Credentials ride in the handshake query; the server validates them
	// before upgrading.
	q := u.Query()
	q.Set("session_id", c.sessionID)
	p := c.cfg.Profile
	if p.PlayerID != "" {
		q.Set("player_id", p.PlayerID)
		q.Set("token", p.Token)
	}
	if p.AdminKey != "" {
		q.Set("admin_key", p.AdminKey)
	}
	if p.DisplayKey != "" {
		q.Set("display_key", p.DisplayKey)
	}
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	return conn, err
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}

func (c *Client) currentConn() *websocket.Conn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn
}

func (c *Client) writerExit() <-chan struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.writerDone
}

// startWriter launches the write pump for conn and records its done channel
// so Close can wait for the flush. The returned stop channel halts the pump
// when the matching reader dies.
func (c *Client) startWriter(conn *websocket.Conn) chan struct{} {
	stop := make(chan struct{})
	done := make(chan struct{})
	c.mu.Lock()
	c.writerDone = done
	c.mu.Unlock()
	go func() {
		c.writePump(conn, stop)
		close(done)
	}()
	return stop
}

// run owns the connection lifecycle: pump until the connection drops, then
// either stop or redial.
func (c *Client) run(stopWriter chan struct{}) {
	for {
		conn := c.currentConn()
		c.readPump(conn)
		close(stopWriter)
		_ = conn.Close()

		select {
		case <-c.closed:
			return
		default:
		}

		if !c.cfg.Reconnect {
			_ = c.Close()
			return
		}

		if !c.redial() {
			return
		}
		stopWriter = c.startWriter(c.currentConn())
		c.log.Info("socket reconnected", zap.String("session_id", c.sessionID))
		if c.cfg.ResyncEvent != "" {
			_ = c.Emit(c.cfg.ResyncEvent, nil)
		}
	}
}

// redial retries at a fixed interval until it succeeds or the client is
// closed. No backoff: the server is expected nearby (LAN or tunnel).
func (c *Client) redial() bool {
	for {
		select {
		case <-c.closed:
			return false
		case <-time.After(c.cfg.RetryDelay):
		}

		conn, err := c.dial(context.Background())
		if err != nil {
			c.reportErr(err)
			continue
		}
		c.setConn(conn)
		return true
	}
}

func (c *Client) readPump(conn *websocket.Conn) {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.reportErr(err)
			}
			return
		}

		f, err := protocol.Decode(msg)
		if err != nil {
			c.reportErr(err)
			continue
		}

		// App-level keepalive, distinct from the websocket control ping.
		if f.Event == protocol.EventPing {
			_ = c.Emit(protocol.EventPong, nil)
			continue
		}

		c.dispatch(f)
	}
}

func (c *Client) dispatch(f protocol.Frame) {
	c.mu.RLock()
	hs := append([]domain.EventHandler(nil), c.handlers[f.Event]...)
	c.mu.RUnlock()

	if len(hs) == 0 {
		c.log.Debug("no handler for event", zap.String("event", f.Event))
		return
	}
	for _, h := range hs {
		h(f)
	}
}

func (c *Client) writePump(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.reportErr(err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-stop:
			return
		case <-c.closed:
			c.flush(conn)
			return
		}
	}
}

// flush writes every frame still queued at shutdown, then the close frame.
// One-shot callers (admin commands, leave_game on quit) rely on this.
func (c *Client) flush(conn *websocket.Conn) {
	for {
		select {
		case msg := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		default:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
				time.Now().Add(writeWait))
			return
		}
	}
}

func (c *Client) reportErr(err error) {
	select {
	case c.errs <- err:
	default: // drop rather than block the pumps
	}
}

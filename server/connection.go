package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Connection wraps a websocket with a buffered outgoing queue drained by
// WritePump. Only the goroutine running ReadPump may call SendMessage.
type Connection struct {
	ws           *websocket.Conn
	send         chan []byte
	writeTimeout time.Duration
	pongWait     time.Duration
	pingPeriod   time.Duration
	logger       *log.Logger
	closeOnce    sync.Once
}

// MessageHandler handles one inbound text frame.
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}

// NewConnection creates a connection wrapper using the queue length,
// write timeout and keepalive settings of cfg.
func NewConnection(ws *websocket.Conn, cfg Config, logger *log.Logger) *Connection {
	buf := cfg.SendBuffer
	if buf <= 0 {
		buf = 1
	}
	return &Connection{
		ws:           ws,
		send:         make(chan []byte, buf),
		writeTimeout: cfg.WriteTimeout,
		pongWait:     cfg.PongWait,
		pingPeriod:   cfg.PingPeriod,
		logger:       logger,
	}
}

// ReadPump reads frames until the peer goes away or stops answering pings,
// passing each to h. On return the send queue is closed so WritePump can finish.
func (c *Connection) ReadPump(h MessageHandler) {
	defer c.closeSend()

	if c.pongWait > 0 {
		c.extendRead()
		c.ws.SetPongHandler(func(string) error {
			c.extendRead()
			return nil
		})
	}

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Printf("read from %s: %v", c.ws.RemoteAddr(), err)
			}
			return
		}
		h.HandleMessage(c, message)
		if c.pongWait > 0 {
			c.extendRead()
		}
	}
}

func (c *Connection) extendRead() {
	_ = c.ws.SetReadDeadline(time.Now().Add(c.pongWait))
}

// WritePump writes queued messages and keepalive pings until the queue is
// closed or a write fails. A failed write closes the socket, which ends ReadPump.
func (c *Connection) WritePump() {
	var tick <-chan time.Time
	if c.pingPeriod > 0 {
		ticker := time.NewTicker(c.pingPeriod)
		defer ticker.Stop()
		tick = ticker.C
	}
	defer c.ws.Close()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = c.ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
				return
			}
			c.extendWrite()
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Printf("write to %s: %v", c.ws.RemoteAddr(), err)
				return
			}
		case <-tick:
			c.extendWrite()
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Printf("ping %s: %v", c.ws.RemoteAddr(), err)
				return
			}
		}
	}
}

func (c *Connection) extendWrite() {
	if c.writeTimeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
}

// SendMessage queues msg as JSON. It never blocks: a full queue drops the
// connection.
func (c *Connection) SendMessage(msg any) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- b:
	default:
		c.logger.Printf("send queue full for %s, closing", c.ws.RemoteAddr())
		c.ws.Close()
	}
	return nil
}

func (c *Connection) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"taboo/internal/app"
	"taboo/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client represents a WebSocket client connection
type Client struct {
	conn    *websocket.Conn
	session *app.RoomSession
	connID  string
	send    chan []byte
	done    chan struct{}
	logger  *slog.Logger
	mu      sync.Mutex
	closed  bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, session *app.RoomSession, connID string, logger *slog.Logger) *Client {
	return &Client{
		conn:    conn,
		session: session,
		connID:  connID,
		send:    make(chan []byte, sendBufferSize),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// ConnID implements app.ClientConnection
func (c *Client) ConnID() string {
	return c.connID
}

// Send implements app.ClientConnection. It never blocks the coordinator: a
// full buffer drops the message for this connection only.
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn("send buffer full, message dropped", "connID", c.connID)
		return nil
	}
}

// Close implements app.ClientConnection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.session.Detach(c.connID)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes an incoming message from the client. Malformed
// payloads answer with ERROR rather than tearing down the handler.
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgJoinRoom:
		c.handleJoinRoom(msg.Payload)
	case MsgSelectTeam:
		c.handleSelectTeam(msg.Payload)
	case MsgLeaveTeam:
		c.handleResult(c.session.LeaveTeam(c.connID))
	case MsgStartGame:
		c.handleResult(c.session.StartGame(c.connID))
	case MsgStartTurn:
		c.handleResult(c.session.StartTurn(c.connID))
	case MsgCardCorrect:
		c.handleResult(c.session.CardCorrect(c.connID))
	case MsgCardSkip:
		c.handleResult(c.session.CardSkip(c.connID))
	case MsgBuzz:
		c.handleResult(c.session.Buzz(c.connID))
	case MsgDismissBuzz:
		c.handleResult(c.session.DismissBuzz(c.connID))
	case MsgRestartGame:
		c.handleResult(c.session.RestartGame(c.connID))
	case MsgPing:
		c.sendPong()
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
	}
}

// handleJoinRoom handles a JOIN_ROOM message
func (c *Client) handleJoinRoom(payload json.RawMessage) {
	var join JoinRoomPayload
	if err := json.Unmarshal(payload, &join); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return
	}

	c.handleResult(c.session.HandleJoin(c.connID, join.PlayerName, join.PlayerID))
}

// handleSelectTeam handles a SELECT_TEAM message
func (c *Client) handleSelectTeam(payload json.RawMessage) {
	var sel SelectTeamPayload
	if err := json.Unmarshal(payload, &sel); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return
	}

	c.handleResult(c.session.SelectTeam(c.connID, sel.Team))
}

// handleResult maps a coordinator error to an ERROR message for this
// connection. Silent no-ops come back as nil and produce nothing.
func (c *Client) handleResult(err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotHost):
		c.sendError(ErrCodeNotHost, "Only the host can perform this action")
	case errors.Is(err, domain.ErrGameInProgress):
		c.sendError(ErrCodeGameInProgress, "Game is already in progress")
	case errors.Is(err, domain.ErrEmptyTeam):
		c.sendError(ErrCodeEmptyTeam, "Each team needs at least one player")
	case errors.Is(err, domain.ErrSkipsNotAllowed):
		c.sendError(ErrCodeSkipsNotAllowed, "Skipping is not allowed")
	case errors.Is(err, domain.ErrInvalidTeam):
		c.sendError(ErrCodeInvalidTeam, "Invalid team")
	case errors.Is(err, domain.ErrRoomFull):
		c.sendError(ErrCodeRoomFull, "Room is full")
	case errors.Is(err, domain.ErrEmptyPlayerName):
		c.sendError(ErrCodeInvalidMessage, "Player name is required")
	default:
		c.sendError(ErrCodeInternalError, err.Error())
	}
}

// sendError sends an error message to this connection only
func (c *Client) sendError(code, message string) {
	c.Send(domain.NewMessage(domain.MsgError, &domain.ErrorPayload{
		Message: message,
		Code:    code,
	}))
}

// sendPong sends a pong message in response to ping
func (c *Client) sendPong() {
	c.Send(domain.NewMessage(domain.MsgPong, &domain.PongPayload{
		ServerTime: time.Now(),
	}))
}

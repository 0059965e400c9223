package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chalis/internal/agents"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // local dev surface
	},
}

// wsConn is one chat connection. Each connection owns its own barista and
// session; turns on a connection are handled strictly in order.
type wsConn struct {
	conn    *websocket.Conn
	send    chan []byte
	mu      sync.Mutex
	barista *agents.Barista
	out     *bytes.Buffer
}

// chatRequest is a client turn
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is one agent turn's console output
type chatResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleWebSocket upgrades the connection and starts a fresh conversation
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	out := &bytes.Buffer{}
	ws := &wsConn{
		conn:    conn,
		send:    make(chan []byte, 256),
		barista: agents.NewBarista(s.model, s.shop, s.temperature, out),
		out:     out,
	}

	go ws.writePump()
	ws.readPump()
}

// readPump reads client turns and runs them through the barista
func (c *wsConn) readPump() {
	defer c.conn.Close()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
		c.handleTurn(message)
	}
}

// writePump forwards agent output and keeps the connection alive
func (c *wsConn) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleTurn runs one turn synchronously; the model call dominates latency,
// and turns on one conversation must not interleave.
func (c *wsConn) handleTurn(message []byte) {
	var req chatRequest
	if err := json.Unmarshal(message, &req); err != nil {
		c.sendResponse(chatResponse{Error: "bad request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c.out.Reset()
	if err := c.barista.HandleTurn(ctx, req.Message); err != nil {
		c.sendResponse(chatResponse{Error: err.Error()})
		return
	}
	c.sendResponse(chatResponse{Reply: c.out.String()})
}

func (c *wsConn) sendResponse(resp chatResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Error marshaling response: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping message")
	}
}

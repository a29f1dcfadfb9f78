package burnroom

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/cydxin/burnroom/message"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time 写入超时时间
	writeWait = 10 * time.Second

	// Time pong超时时间
	pongWait = 60 * time.Second

	// Send 对应的ping 必须小于pong
	pingPeriod = (pongWait * 9) / 10

	// Maximum 对等端允许消息大小（媒体只传路径，不传内容）
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for SDK
	},
}

// Client ws和hub的连接，一个用户可以有多个连接
type Client struct {
	hub *WsServer

	// 🔗链接
	conn *websocket.Conn

	// 消息缓冲区
	send chan []byte

	// UserID 和用户关联
	UserID int64

	// Name 展示名，作为消息前缀
	Name string
}

// readPump 将消息从client (websocket 连接) 到hub管理。
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { _ = c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn().Err(err).Int64("user_id", c.UserID).Msg("readPump error")
			}
			break
		}
		c.hub.handleMessage(c, msg)
	}
}

// writePump 将消息从hub管理写到具体的client (websocket 连接)。
// 每条出站指令单独一帧，客户端按帧解析 JSON。
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.log.Debug().Int64("user_id", c.UserID).Msg("writePump 写入ping失败")
				return
			}
		}
	}
}

type WsServer struct {
	clients map[*Client]bool
	// 用户ID ->该用户所有活跃的Websocket连接（支持多设备）
	userClients map[int64][]*Client

	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Run 退出后关闭
	mu         sync.RWMutex
	// 回调处理消息
	onMessage func(client *Client, msg []byte)

	log zerolog.Logger
}

func NewWsServer(log zerolog.Logger) *WsServer {
	return &WsServer{
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		done:        make(chan struct{}),
		clients:     make(map[*Client]bool),
		userClients: make(map[int64][]*Client),
		log:         log,
	}
}

// Run hub 主循环，ctx 取消后关闭全部连接的发送通道
func (h *WsServer) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.userClients = make(map[int64][]*Client)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.removeUserClientLocked(client)
			}
			h.mu.Unlock()
		}
	}
}

func (h *WsServer) removeUserClientLocked(client *Client) {
	userConns := h.userClients[client.UserID]
	for i, conn := range userConns {
		if conn == client {
			h.userClients[client.UserID] = append(userConns[:i], userConns[i+1:]...)
			break
		}
	}
	if len(h.userClients[client.UserID]) == 0 {
		delete(h.userClients, client.UserID)
	}
}

func (h *WsServer) handleMessage(client *Client, msg []byte) {
	if h.onMessage != nil {
		h.onMessage(client, msg)
	}
}

func (h *WsServer) SetOnMessage(fn func(client *Client, msg []byte)) {
	h.onMessage = fn
}

// ServeWS 处理ws的请求
func (h *WsServer) ServeWS(w http.ResponseWriter, r *http.Request, userID int64, name string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 256),
		UserID: userID,
		Name:   name,
	}
	select {
	case client.hub.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}
	h.log.Debug().Int64("user_id", userID).Msg("ws client registered")

	go client.writePump()
	go client.readPump()
}

// SendToUser 发送消息到用户的全部连接，缓冲区满时丢弃
func (h *WsServer) SendToUser(userID int64, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.userClients[userID] {
		select {
		case client.send <- msg:
		default:
			// 丢弃避免阻塞
		}
	}
}

// Dispatch 执行出站指令：每条指令序列化后发给接收人
func (h *WsServer) Dispatch(plan []message.Instruction) {
	for _, in := range plan {
		b, err := json.Marshal(in)
		if err != nil {
			h.log.Error().Err(err).Msg("marshal instruction failed")
			continue
		}
		h.SendToUser(in.RecipientID, b)
	}
}

// IsOnline 用户当前是否有 ws 连接
func (h *WsServer) IsOnline(userID int64) bool {
	return h.ConnCount(userID) > 0
}

// ConnCount 用户当前的连接数（多设备）
func (h *WsServer) ConnCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.userClients[userID])
}

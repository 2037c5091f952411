// Package client 实现连接游戏服务器的 WebSocket 客户端。
package client

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// 心跳检测间隔
	heartbeatInterval = 5 * time.Second
)

// Client WebSocket 客户端
type Client struct {
	ServerURL string
	conn      *websocket.Conn
	send      chan []byte
	receive   chan *protocol.Message
	done      chan struct{}

	PlayerID   string
	PlayerName string

	// 网络延迟（毫秒）
	Latency int64

	// 回调
	OnMessage       func(*protocol.Message) // 消息回调
	OnError         func(error)             // 错误回调
	OnClose         func()                  // 关闭回调
	OnLatencyUpdate func(int64)             // 延迟更新回调

	mu     sync.RWMutex
	closed bool
}

// NewClient 创建客户端
func NewClient(serverURL string) *Client {
	return &Client{
		ServerURL: serverURL,
		send:      make(chan []byte, 256),
		receive:   make(chan *protocol.Message, 256),
		done:      make(chan struct{}),
	}
}

// Connect 连接服务器
func (c *Client) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.Dial(c.ServerURL, nil)
	if err != nil {
		return err
	}

	c.conn = conn

	// 启动读写协程
	go c.readPump()
	go c.writePump()

	return nil
}

// readPump 从服务器读取消息
func (c *Client) readPump() {
	defer func() {
		c.Close()
		if c.OnClose != nil {
			c.OnClose()
		}
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				if c.OnError != nil {
					c.OnError(err)
				}
			}
			return
		}

		msg, err := codec.Decode(message)
		if err != nil {
			log.Printf("消息解析错误: %v", err)
			continue
		}

		// 记录服务器分配的身份
		if msg.Type == protocol.MsgConnected {
			if payload, err := codec.ParsePayload[protocol.ConnectedPayload](msg); err == nil {
				c.PlayerID = payload.PlayerID
				c.PlayerName = payload.PlayerName
			}
		}

		// 处理 pong 消息计算延迟
		if msg.Type == protocol.MsgPong {
			if payload, err := codec.ParsePayload[protocol.PongPayload](msg); err == nil {
				latency := time.Now().UnixMilli() - payload.ClientTimestamp
				c.Latency = latency
				if c.OnLatencyUpdate != nil {
					c.OnLatencyUpdate(latency)
				}
			}
		}

		// 回调处理
		if c.OnMessage != nil {
			c.OnMessage(msg)
		}

		// 同时发送到 channel
		select {
		case c.receive <- msg:
		default:
		}
	}
}

// writePump 向服务器写入消息
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

// SendMessage 发送消息
func (c *Client) SendMessage(msg *protocol.Message) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return errors.New("connection closed")
	}
	c.mu.RUnlock()

	data, err := codec.Encode(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

// Receive 接收消息 (阻塞)
func (c *Client) Receive() (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-c.done:
		return nil, errors.New("connection closed")
	}
}

// ReceiveWithTimeout 带超时接收消息
func (c *Client) ReceiveWithTimeout(timeout time.Duration) (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-time.After(timeout):
		return nil, errors.New("receive timeout")
	case <-c.done:
		return nil, errors.New("connection closed")
	}
}

// Close 关闭连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
	}
}

// IsConnected 是否已连接
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed && c.conn != nil
}

// StartHeartbeat 启动心跳检测
func (c *Client) StartHeartbeat() {
	go func() {
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if c.IsConnected() {
					c.Ping()
				}
			case <-c.done:
				return
			}
		}
	}()
}

// GetLatency 获取当前延迟（毫秒）
func (c *Client) GetLatency() int64 {
	return c.Latency
}

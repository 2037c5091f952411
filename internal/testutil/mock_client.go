package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
)

// MockClient 实现 types.ClientInterface 的 testify mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetRoom(roomCode string) {
	m.Called(roomCode)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的记录型 mock 客户端（不需要逐条断言时使用）。
// 计时器回调会并发推送消息，因此内部带锁。
type SimpleClient struct {
	ID   string
	Name string

	mu       sync.Mutex
	roomCode string
	messages []*protocol.Message
}

// NewSimpleClient 创建记录型客户端
func NewSimpleClient(id, name string) *SimpleClient {
	return &SimpleClient{ID: id, Name: name}
}

func (m *SimpleClient) GetID() string   { return m.ID }
func (m *SimpleClient) GetName() string { return m.Name }

func (m *SimpleClient) GetRoom() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roomCode
}

func (m *SimpleClient) SetRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roomCode = code
}

func (m *SimpleClient) SendMessage(msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *SimpleClient) Close() {}

// SentMessages 返回已收到消息的副本
func (m *SimpleClient) SentMessages() []*protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*protocol.Message(nil), m.messages...)
}

// MessagesOfType 按类型过滤已收到的消息
func (m *SimpleClient) MessagesOfType(t protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, msg := range m.SentMessages() {
		if msg.Type == t {
			out = append(out, msg)
		}
	}
	return out
}

// LastState 返回最近一次收到的状态快照，没有则返回 nil
func (m *SimpleClient) LastState() *protocol.StatePayload {
	states := m.MessagesOfType(protocol.MsgState)
	if len(states) == 0 {
		return nil
	}
	payload, err := codec.ParsePayload[protocol.StatePayload](states[len(states)-1])
	if err != nil {
		return nil
	}
	return payload
}

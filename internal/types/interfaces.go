package types

import (
	"github.com/moyugame/letter-rush/internal/protocol"
)

// ClientInterface 定义客户端连接接口（用于打破循环依赖、便于测试 mock）
type ClientInterface interface {
	GetID() string
	GetName() string
	GetRoom() string
	SetRoom(code string)
	SendMessage(msg *protocol.Message)
	Close()
}

package client

import (
	"time"

	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
)

// --- 便捷方法 ---

// Join 加入房间（房间不存在时创建）
func (c *Client) Join(roomCode, name string) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{
		RoomCode: roomCode,
		Name:     name,
	}))
}

// Start 请求开始游戏（仅房主有效）
func (c *Client) Start() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgStart, protocol.StartPayload{}))
}

// LeaveRoom 离开房间
func (c *Client) LeaveRoom() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgLeaveRoom, nil))
}

// ClaimTile 抢字母池中 idx 位置的字母
func (c *Client) ClaimTile(roomCode string, idx int) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgClaimTile, protocol.ClaimTilePayload{
		RoomCode:  roomCode,
		PoolIndex: idx,
	}))
}

// SubmitWord 按手牌位置提交单词
func (c *Client) SubmitWord(roomCode string, indices []int) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgSubmitWord, protocol.SubmitWordPayload{
		RoomCode: roomCode,
		Indices:  indices,
	}))
}

// GetLeaderboard 获取全服排行榜
func (c *Client) GetLeaderboard(limit int) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{
		Limit: limit,
	}))
}

// Ping 发送心跳
func (c *Client) Ping() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}

package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgJoin      MessageType = "join"       // 加入房间（房间不存在时创建）
	MsgStart     MessageType = "start"      // 房主开始游戏
	MsgLeaveRoom MessageType = "leave_room" // 离开房间

	// 游戏操作
	MsgClaimTile  MessageType = "claim_tile"  // 抢字母（yoink）
	MsgSubmitWord MessageType = "submit_word" // 提交单词

	// 排行榜
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取全服排行榜
)

// 服务端 → 客户端 消息类型
const (
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 游戏状态
	MsgState         MessageType = "state"           // 房间状态快照（每次变更后推送）
	MsgTileClaimedFx MessageType = "tile_claimed_fx" // 抢字母特效（瞬时，不属于状态）
	MsgWordAccepted  MessageType = "word_accepted"   // 单词接受（仅提交者）
	MsgInvalidWord   MessageType = "invalid_word"    // 单词无效（仅提交者）

	// 排行榜
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)

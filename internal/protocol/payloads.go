package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// JoinPayload 加入房间请求
type JoinPayload struct {
	RoomCode string `json:"room_code"` // 房间号（大小写不敏感）
	Name     string `json:"name"`      // 昵称
}

// StartPayload 开始游戏请求
type StartPayload struct {
	RoomCode string `json:"room_code"`
}

// ClaimTilePayload 抢字母请求
type ClaimTilePayload struct {
	RoomCode  string `json:"room_code"`
	PoolIndex int    `json:"pool_index"` // 字母池中的位置
}

// SubmitWordPayload 提交单词请求
type SubmitWordPayload struct {
	RoomCode string `json:"room_code"`
	Indices  []int  `json:"indices"` // 手牌位置，按拼词顺序排列
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // 数量，0 表示默认
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// StatePayload 房间状态快照（按接收者定制）
type StatePayload struct {
	RoomCode   string   `json:"room_code"`
	HostID     string   `json:"host_id"`
	Phase      string   `json:"phase"`      // lobby/playing/intermission/final
	Round      int      `json:"round"`      // 当前轮次，-1 表示未开始
	Multiplier float64  `json:"multiplier"` // 当前轮次倍率
	Pool       []string `json:"pool"`       // 公共字母池（对所有人可见）
	EndsAt     int64    `json:"ends_at"`    // 当前阶段结束时间戳（毫秒），0 表示无计时

	Players []PlayerInfo `json:"players"` // 按加入顺序排列

	// 仅在 intermission/final 阶段下发，其余阶段为 null（防止局中泄分）
	Leaders     []string         `json:"leaders,omitempty"`
	Leaderboard []LeaderboardRow `json:"leaderboard,omitempty"`

	You SelfInfo `json:"you"` // 接收者自己的私有信息
}

// PlayerInfo 玩家公开信息
type PlayerInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsHost   bool   `json:"is_host"`
	BankSize int    `json:"bank_size"` // 手牌数量（内容不公开）
	Score    *int   `json:"score"`     // 仅在 intermission/final 阶段可见
}

// LeaderboardRow 房间内排行榜条目（按分数降序）
type LeaderboardRow struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// SelfInfo 接收者私有信息
type SelfInfo struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Bank []string `json:"bank"` // 自己的手牌，不会下发给他人
}

// TileClaimedFxPayload 抢字母特效通知（广播给整个房间）
type TileClaimedFxPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Letter     string `json:"letter"`
	PoolIndex  int    `json:"pool_index"` // 被抢走时所在的位置
}

// WordAcceptedPayload 单词接受通知（仅提交者）
type WordAcceptedPayload struct {
	Word   string `json:"word"` // 规范化后的单词（小写）
	Points int    `json:"points"`
}

// InvalidWordPayload 单词无效通知（仅提交者）
type InvalidWordPayload struct {
	Word   string `json:"word,omitempty"` // 能拼出时回显
	Reason string `json:"reason"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LeaderboardResultPayload 全服排行榜结果
type LeaderboardResultPayload struct {
	Entries []GlobalLeaderboardEntry `json:"entries"`
}

// GlobalLeaderboardEntry 全服排行榜条目
type GlobalLeaderboardEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	TotalPoints int    `json:"total_points"`
	GamesPlayed int    `json:"games_played"`
	BestGame    int    `json:"best_game"` // 单局最高分
}

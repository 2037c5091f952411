package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003
	ErrCodeGameStarted  = 2004 // 游戏已开始，无法加入
	ErrCodeBadRoomCode  = 2005 // 房间号为空或非法

	ErrCodeGameNotStart     = 3001
	ErrCodeNotHost          = 3002
	ErrCodeNotEnoughPlayers = 3003
	ErrCodeBankFull         = 3004 // 手牌已满
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:          "未知错误",
	ErrCodeInvalidMsg:       "无效的消息格式",
	ErrCodeRoomNotFound:     "房间不存在",
	ErrCodeRoomFull:         "房间已满",
	ErrCodeNotInRoom:        "您不在房间中",
	ErrCodeGameStarted:      "游戏已开始",
	ErrCodeBadRoomCode:      "房间号不能为空",
	ErrCodeGameNotStart:     "本轮尚未开始",
	ErrCodeNotHost:          "只有房主可以开始游戏",
	ErrCodeNotEnoughPlayers: "人数不足，无法开始",
	ErrCodeBankFull:         "手牌已满",
}

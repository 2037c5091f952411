package apperrors

import (
	"github.com/moyugame/letter-rush/internal/protocol"
)

// GameError 游戏错误（房间和动作处理共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound     = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull         = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom        = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameStarted      = &GameError{Code: protocol.ErrCodeGameStarted, Message: "游戏已开始"}
	ErrBadRoomCode      = &GameError{Code: protocol.ErrCodeBadRoomCode, Message: "房间号不能为空"}
	ErrGameNotStart     = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "本轮尚未开始"}
	ErrNotHost          = &GameError{Code: protocol.ErrCodeNotHost, Message: "只有房主可以开始游戏"}
	ErrNotEnoughPlayers = &GameError{Code: protocol.ErrCodeNotEnoughPlayers, Message: "人数不足，无法开始"}
	ErrBankFull         = &GameError{Code: protocol.ErrCodeBankFull, Message: "手牌已满"}
)

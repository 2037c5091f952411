// Package handler 将 WebSocket 消息分发到对应的游戏操作。
package handler

import (
	"errors"
	"log"

	"github.com/moyugame/letter-rush/internal/apperrors"
	"github.com/moyugame/letter-rush/internal/game/room"
	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
	"github.com/moyugame/letter-rush/internal/server/storage"
	"github.com/moyugame/letter-rush/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	RoomManager *room.RoomManager
	Leaderboard *storage.LeaderboardManager // 未启用 Redis 时为 nil
}

// Handler 消息处理器
type Handler struct {
	roomManager *room.RoomManager
	leaderboard *storage.LeaderboardManager
	handlers    map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		roomManager: deps.RoomManager,
		leaderboard: deps.Leaderboard,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作
		protocol.MsgJoin:      h.handleJoin,
		protocol.MsgStart:     func(c types.ClientInterface, _ *protocol.Message) { h.handleStart(c) },
		protocol.MsgLeaveRoom: func(c types.ClientInterface, _ *protocol.Message) { h.handleLeaveRoom(c) },

		// 游戏操作
		protocol.MsgClaimTile:  h.handleClaimTile,
		protocol.MsgSubmitWord: h.handleSubmitWord,

		// 排行榜
		protocol.MsgGetLeaderboard: h.handleGetLeaderboard,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendGameError 将游戏错误转为协议错误消息发给客户端
func sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// roomOf 找到客户端所在的房间，不在房间时回发错误并返回 nil
func (h *Handler) roomOf(client types.ClientInterface) *room.Room {
	code := client.GetRoom()
	if code == "" {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return nil
	}
	r := h.roomManager.GetRoom(code)
	if r == nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeRoomNotFound))
		return nil
	}
	return r
}

package handler

import (
	"github.com/moyugame/letter-rush/internal/game/room"
	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
	"github.com/moyugame/letter-rush/internal/types"
)

// handleJoin 处理加入房间（房间不存在时创建）
func (h *Handler) handleJoin(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.JoinPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 换房前先离开当前房间
	if cur := client.GetRoom(); cur != "" && cur != room.NormalizeCode(payload.RoomCode) {
		h.roomManager.LeaveRoom(client)
	}

	if err := h.roomManager.JoinRoom(client, payload.RoomCode, payload.Name); err != nil {
		sendGameError(client, err)
	}
}

// handleStart 处理房主开始游戏
func (h *Handler) handleStart(client types.ClientInterface) {
	r := h.roomOf(client)
	if r == nil {
		return
	}

	if err := r.Start(client.GetID()); err != nil {
		sendGameError(client, err)
	}
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	h.roomManager.LeaveRoom(client)
}

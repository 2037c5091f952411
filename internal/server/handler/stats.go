package handler

import (
	"context"

	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
	"github.com/moyugame/letter-rush/internal/types"
)

// handleGetLeaderboard 获取全服排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	if h.leaderboard == nil {
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, "全服排行榜未启用"))
		return
	}

	payload, err := codec.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		payload = &protocol.GetLeaderboardPayload{}
	}

	// 限制请求数量
	if payload.Limit <= 0 || payload.Limit > 50 {
		payload.Limit = 10
	}

	entries, err := h.leaderboard.GetLeaderboard(context.Background(), payload.Limit)
	if err != nil {
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, "获取排行榜失败"))
		return
	}

	// 转换为协议格式
	protocolEntries := make([]protocol.GlobalLeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		protocolEntries = append(protocolEntries, protocol.GlobalLeaderboardEntry{
			Rank:        entry.Rank,
			PlayerID:    entry.PlayerID,
			PlayerName:  entry.PlayerName,
			TotalPoints: entry.TotalPoints,
			GamesPlayed: entry.GamesPlayed,
			BestGame:    entry.BestGame,
		})
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: protocolEntries,
	}))
}

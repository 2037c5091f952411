package handler

import (
	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
	"github.com/moyugame/letter-rush/internal/types"
)

// handleClaimTile 处理抢字母
func (h *Handler) handleClaimTile(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ClaimTilePayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.roomOf(client)
	if r == nil {
		return
	}

	if err := r.ClaimTile(client.GetID(), payload.PoolIndex); err != nil {
		sendGameError(client, err)
	}
}

// handleSubmitWord 处理提交单词
func (h *Handler) handleSubmitWord(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.SubmitWordPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.roomOf(client)
	if r == nil {
		return
	}

	if err := r.SubmitWord(client.GetID(), payload.Indices); err != nil {
		sendGameError(client, err)
	}
}

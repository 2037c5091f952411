package room

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/moyugame/letter-rush/internal/apperrors"
	"github.com/moyugame/letter-rush/internal/letters"
	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
)

// ClaimTile 抢字母（yoink）：把池中 idx 位置的字母移入玩家手牌。
//
// 静默丢弃（预期中的竞态输家，不报错）：冷却期内的请求、
// 已失效或越界的下标。
// 报错（调用方可纠正）：不在房间、本轮未开始、手牌已满。
func (r *Room) ClaimTile(clientID string, idx int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return apperrors.ErrRoomNotFound
	}
	p, ok := r.Players[clientID]
	if !ok {
		return apperrors.ErrNotInRoom
	}
	if r.Phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}

	now := time.Now()
	if now.Sub(p.LastClaimAt) < r.cfg.ClaimCooldown {
		return nil // 冷却中，静默丢弃
	}
	if len(p.Bank) >= BankCap {
		return apperrors.ErrBankFull
	}
	if idx < 0 || idx >= len(r.Pool) {
		return nil // 过期下标，静默忽略
	}

	letter := r.Pool[idx]
	r.Pool = append(r.Pool[:idx], r.Pool[idx+1:]...)
	p.Bank = append(p.Bank, letter)
	p.LastClaimAt = now

	// 瞬时特效通知：不属于权威状态，无需回放语义
	r.broadcastLocked(codec.MustNewMessage(protocol.MsgTileClaimedFx, protocol.TileClaimedFxPayload{
		PlayerID:   clientID,
		PlayerName: p.Name,
		Letter:     letter,
		PoolIndex:  idx,
	}))

	// 池大小变了，生成节奏随之重排
	r.scheduleSpawnLocked()
	r.broadcastStateLocked()
	return nil
}

// SubmitWord 提交单词：indices 为手牌位置，按拼词顺序排列。
//
// 畸形输入（数量越界、下标越界或重复）静默忽略；
// 拼得出但不在词典中的单词回发 invalid_word；
// 成功时计分、按位置从高到低移除消耗的手牌、私发 word_accepted。
// 任何失败都不消耗手牌。
func (r *Room) SubmitWord(clientID string, indices []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return apperrors.ErrRoomNotFound
	}
	p, ok := r.Players[clientID]
	if !ok {
		return apperrors.ErrNotInRoom
	}
	if r.Phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}

	if len(indices) < 2 || len(indices) > BankCap {
		return nil
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(p.Bank) || seen[i] {
			return nil
		}
		seen[i] = true
	}

	var sb strings.Builder
	for _, i := range indices {
		sb.WriteString(p.Bank[i])
	}
	word := strings.ToLower(sb.String())

	if !r.dict.Contains(word) {
		p.Client.SendMessage(codec.MustNewMessage(protocol.MsgInvalidWord, protocol.InvalidWordPayload{
			Word:   word,
			Reason: "不是有效单词",
		}))
		return nil
	}

	points := letters.ScoreWord(word, r.RoundIdx)
	p.Score += points

	// 从高位到低位移除，避免前面的移除让后面的下标失效
	consumed := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(consumed)))
	for _, i := range consumed {
		p.Bank = append(p.Bank[:i], p.Bank[i+1:]...)
	}

	log.Printf("✅ 房间 %s 玩家 %s 拼出 %q 得 %d 分", r.Code, p.Name, word, points)

	p.Client.SendMessage(codec.MustNewMessage(protocol.MsgWordAccepted, protocol.WordAcceptedPayload{
		Word:   word,
		Points: points,
	}))

	r.broadcastStateLocked()
	return nil
}

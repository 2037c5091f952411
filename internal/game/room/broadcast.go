package room

import (
	"slices"
	"sort"

	"github.com/moyugame/letter-rush/internal/letters"
	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
)

// scoresVisibleLocked 分数与排行榜仅在休息与终局阶段可见，
// lobby/playing 阶段一律不下发，避免局中泄分。
func (r *Room) scoresVisibleLocked() bool {
	return r.Phase == PhaseIntermission || r.Phase == PhaseFinal
}

// stateForLocked 构造发给指定玩家的状态快照。
// 字母池对所有人公开；手牌只发给本人，他人仅见数量。
func (r *Room) stateForLocked(id string, p *Player) *protocol.StatePayload {
	reveal := r.scoresVisibleLocked()

	players := make([]protocol.PlayerInfo, 0, len(r.Order))
	for _, pid := range r.Order {
		q := r.Players[pid]
		info := protocol.PlayerInfo{
			ID:       pid,
			Name:     q.Name,
			IsHost:   pid == r.HostID,
			BankSize: len(q.Bank),
		}
		if reveal {
			score := q.Score
			info.Score = &score
		}
		players = append(players, info)
	}

	var endsAt int64
	if !r.EndsAt.IsZero() {
		endsAt = r.EndsAt.UnixMilli()
	}

	state := &protocol.StatePayload{
		RoomCode:   r.Code,
		HostID:     r.HostID,
		Phase:      string(r.Phase),
		Round:      r.RoundIdx,
		Multiplier: letters.Multiplier(r.RoundIdx),
		Pool:       slices.Clone(r.Pool),
		EndsAt:     endsAt,
		Players:    players,
		You: protocol.SelfInfo{
			ID:   id,
			Name: p.Name,
			Bank: slices.Clone(p.Bank),
		},
	}

	if reveal {
		state.Leaders = r.leadersLocked()
		state.Leaderboard = r.leaderboardLocked()
	}
	return state
}

// leadersLocked 返回并列最高分的玩家 ID（按加入顺序）
func (r *Room) leadersLocked() []string {
	if len(r.Order) == 0 {
		return nil
	}

	top := r.Players[r.Order[0]].Score
	for _, id := range r.Order[1:] {
		if s := r.Players[id].Score; s > top {
			top = s
		}
	}

	leaders := make([]string, 0, 1)
	for _, id := range r.Order {
		if r.Players[id].Score == top {
			leaders = append(leaders, id)
		}
	}
	return leaders
}

// leaderboardLocked 返回按分数降序的房间排行榜（同分按加入顺序）
func (r *Room) leaderboardLocked() []protocol.LeaderboardRow {
	rows := make([]protocol.LeaderboardRow, 0, len(r.Order))
	for _, id := range r.Order {
		p := r.Players[id]
		rows = append(rows, protocol.LeaderboardRow{
			PlayerID: id,
			Name:     p.Name,
			Score:    p.Score,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})
	return rows
}

// broadcastStateLocked 给房间内每名玩家推送各自视角的状态快照
func (r *Room) broadcastStateLocked() {
	for id, p := range r.Players {
		if p.Client != nil {
			p.Client.SendMessage(codec.MustNewMessage(protocol.MsgState, r.stateForLocked(id, p)))
		}
	}
}

// broadcastLocked 给房间内所有玩家广播同一条消息
func (r *Room) broadcastLocked(msg *protocol.Message) {
	for _, p := range r.Players {
		if p.Client != nil {
			p.Client.SendMessage(msg)
		}
	}
}

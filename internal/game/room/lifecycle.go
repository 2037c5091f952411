package room

import (
	"context"
	"log"
	"time"

	"github.com/moyugame/letter-rush/internal/apperrors"
	"github.com/moyugame/letter-rush/internal/letters"
)

// Start 房主开始游戏：lobby → playing。
// 仅房主、仅 lobby 阶段、仅人数达标时有效。
func (r *Room) Start(clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return apperrors.ErrRoomNotFound
	}
	if _, ok := r.Players[clientID]; !ok {
		return apperrors.ErrNotInRoom
	}
	if r.Phase != PhaseLobby {
		return apperrors.ErrGameStarted
	}
	if clientID != r.HostID {
		return apperrors.ErrNotHost
	}
	if len(r.Players) < MinPlayers {
		return apperrors.ErrNotEnoughPlayers
	}

	r.RoundIdx = 0
	r.startRoundLocked()
	return nil
}

// startRoundLocked 进入一个新回合：
// 清空所有手牌、重新灌满字母池、启动回合计时与生成计时。
func (r *Room) startRoundLocked() {
	r.Phase = PhasePlaying
	for _, p := range r.Players {
		p.Bank = p.Bank[:0]
		p.LastClaimAt = time.Time{}
	}

	r.Pool = r.Pool[:0]
	for len(r.Pool) < PoolCap {
		r.Pool = append(r.Pool, letters.Draw())
	}

	r.EndsAt = time.Now().Add(r.cfg.RoundDuration)
	stopTimerLocked(&r.roundTimer)
	r.roundTimer = time.AfterFunc(r.cfg.RoundDuration, r.onRoundEnd)
	r.scheduleSpawnLocked()

	log.Printf("🎲 房间 %s 第 %d/%d 轮开始 (倍率 %.1f)",
		r.Code, r.RoundIdx+1, r.cfg.Rounds, letters.Multiplier(r.RoundIdx))

	r.broadcastStateLocked()
}

// onRoundEnd 回合计时器触发：playing → intermission 或 final
func (r *Room) onRoundEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 迟到的回调：房间已销毁或阶段已变化时直接退出
	if r.closed || r.Phase != PhasePlaying {
		return
	}

	stopTimerLocked(&r.spawnTimer)
	stopTimerLocked(&r.roundTimer)

	if r.RoundIdx >= r.cfg.Rounds-1 {
		r.enterFinalLocked()
		return
	}

	r.Phase = PhaseIntermission
	r.EndsAt = time.Now().Add(r.cfg.BreakDuration)
	stopTimerLocked(&r.breakTimer)
	r.breakTimer = time.AfterFunc(r.cfg.BreakDuration, r.onBreakEnd)

	log.Printf("⏸️ 房间 %s 第 %d 轮结束，进入休息", r.Code, r.RoundIdx+1)

	r.broadcastStateLocked()
}

// onBreakEnd 休息计时器触发：intermission → playing（或 final 兜底）
func (r *Room) onBreakEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.Phase != PhaseIntermission {
		return
	}

	stopTimerLocked(&r.breakTimer)

	r.RoundIdx++
	// 兜底：休息计时器触发时已无下一轮可打
	if r.RoundIdx >= r.cfg.Rounds {
		r.RoundIdx = r.cfg.Rounds - 1
		r.enterFinalLocked()
		return
	}

	r.startRoundLocked()
}

// enterFinalLocked 进入终局：停止全部计时器，冻结状态，上报战绩
func (r *Room) enterFinalLocked() {
	r.Phase = PhaseFinal
	r.EndsAt = time.Time{}
	r.stopAllTimersLocked()

	log.Printf("🏁 房间 %s 游戏结束", r.Code)

	if r.stats != nil {
		results := r.gameResultsLocked()
		// 战绩上报是尽力而为的带外操作，不持房间锁
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := r.stats.RecordGame(ctx, results); err != nil {
				log.Printf("📊 房间 %s 战绩上报失败: %v", r.Code, err)
			}
		}()
	}

	r.broadcastStateLocked()
}

// gameResultsLocked 汇总本局战绩（按加入顺序）
func (r *Room) gameResultsLocked() []GameResult {
	leaders := r.leadersLocked()
	top := make(map[string]bool, len(leaders))
	for _, id := range leaders {
		top[id] = true
	}

	results := make([]GameResult, 0, len(r.Order))
	for _, id := range r.Order {
		p := r.Players[id]
		results = append(results, GameResult{
			PlayerID: id,
			Name:     p.Name,
			Score:    p.Score,
			Won:      top[id],
		})
	}
	return results
}

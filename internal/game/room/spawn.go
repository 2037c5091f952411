package room

import (
	"time"

	"github.com/moyugame/letter-rush/internal/letters"
)

// spawnInterval 计算下一次生成字母的间隔（橡皮筋函数）：
// 池越空生成越快，池越满生成越慢，在 [Empty, Full] 区间上线性插值。
// f 按 [0, PoolCap-1] 截断；池满时按最慢间隔继续轮询，
// 这样被抢走一个字母后无需外部触发即可恢复生成。
func spawnInterval(cfg Config, poolSize int) time.Duration {
	f := poolSize
	if f < 0 {
		f = 0
	}
	if f > PoolCap-1 {
		f = PoolCap - 1
	}
	span := cfg.SpawnIntervalFull - cfg.SpawnIntervalEmpty
	return cfg.SpawnIntervalEmpty + span*time.Duration(f)/time.Duration(PoolCap-1)
}

// scheduleSpawnLocked 重排生成计时器。
// 总是先停掉已有计时器再装新的，保证同一房间不会出现双计时器；
// 回合开始、每次生成、每次抢走字母后都会重新计算间隔。
func (r *Room) scheduleSpawnLocked() {
	stopTimerLocked(&r.spawnTimer)
	r.spawnTimer = time.AfterFunc(spawnInterval(r.cfg, len(r.Pool)), r.onSpawn)
}

// onSpawn 生成计时器触发：池未满时补一个字母并广播，然后按新池大小重排
func (r *Room) onSpawn() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.Phase != PhasePlaying {
		return
	}

	if len(r.Pool) < PoolCap {
		r.Pool = append(r.Pool, letters.Draw())
		r.broadcastStateLocked()
	}

	r.scheduleSpawnLocked()
}

// Package room 实现房间游戏状态机：
// 回合生命周期、字母池生成调度、抢字母与提交单词的动作处理，
// 以及面向每个接收者的状态投影。
//
// 并发模型：每个房间一把互斥锁，所有客户端动作与计时器回调
// 都在持锁状态下完整执行（包括广播），因此同一房间内的动作
// 天然全序化，抢同一位置的两次 yoink 至多一次成功。
// 广播只是向带缓冲的发送通道写入，持锁期间不做任何阻塞 I/O。
package room

import (
	"strings"
	"sync"
	"time"

	"github.com/moyugame/letter-rush/internal/dictionary"
	"github.com/moyugame/letter-rush/internal/types"
)

const (
	// PoolCap 公共字母池容量上限
	PoolCap = 16
	// BankCap 玩家手牌容量上限
	BankCap = 7
	// MinPlayers 开始游戏所需最少人数
	MinPlayers = 2
	// MaxNameLen 昵称长度上限（按字符计）
	MaxNameLen = 24

	// DefaultName 空昵称的占位名
	DefaultName = "无名玩家"
)

// Phase 房间阶段
type Phase string

const (
	PhaseLobby        Phase = "lobby"        // 等待开始
	PhasePlaying      Phase = "playing"      // 回合进行中
	PhaseIntermission Phase = "intermission" // 轮间休息（公布排行榜）
	PhaseFinal        Phase = "final"        // 全部轮次结束
)

// Config 房间游戏参数
type Config struct {
	Rounds        int           // 总轮数
	RoundDuration time.Duration // 每轮时长
	BreakDuration time.Duration // 轮间休息时长
	MaxPlayers    int           // 房间人数上限
	ClaimCooldown time.Duration // 单个玩家两次抢字母的最小间隔

	// 字母生成的橡皮筋区间：池空时最快，池接近满时最慢
	SpawnIntervalEmpty time.Duration
	SpawnIntervalFull  time.Duration
}

// DefaultConfig 返回默认房间参数
func DefaultConfig() Config {
	return Config{
		Rounds:             3,
		RoundDuration:      90 * time.Second,
		BreakDuration:      10 * time.Second,
		MaxPlayers:         4,
		ClaimCooldown:      500 * time.Millisecond,
		SpawnIntervalEmpty: 500 * time.Millisecond,
		SpawnIntervalFull:  10 * time.Second,
	}
}

// Player 房间中的玩家
type Player struct {
	Client      types.ClientInterface // 连接，可发送消息
	Name        string                // 昵称（已裁剪）
	Score       int                   // 累计得分，整局游戏只增不减，不随轮次重置
	Bank        []string              // 私有手牌，每轮开始时清空
	LastClaimAt time.Time             // 最近一次成功抢字母的时间（冷却判定用）
}

// Room 游戏房间
type Room struct {
	Code string // 房间号，创建后不变

	cfg   Config
	dict  *dictionary.Dictionary
	stats StatsRecorder // 可为 nil（未接入 Redis 时）

	HostID   string             // 房主连接 ID，房主离开时按加入顺序顺延
	Players  map[string]*Player // 连接 ID → 玩家
	Order    []string           // 加入顺序，始终与 Players 的键集一致
	Pool     []string           // 公共字母池，插入有序，移除时后续下标前移
	RoundIdx int                // 当前轮次，-1 表示未开始
	Phase    Phase
	EndsAt   time.Time // 当前阶段计时结束时间，零值表示无计时

	// 三个独立计时器：spawn 仅在 playing 阶段存在，
	// round 与 break 同一时刻至多一个在运行
	spawnTimer *time.Timer
	roundTimer *time.Timer
	breakTimer *time.Timer

	closed bool // 房间已销毁，迟到的计时器回调据此退出

	mu sync.Mutex
}

func newRoom(code string, cfg Config, dict *dictionary.Dictionary, stats StatsRecorder) *Room {
	return &Room{
		Code:     code,
		cfg:      cfg,
		dict:     dict,
		stats:    stats,
		Players:  make(map[string]*Player),
		Order:    make([]string, 0, cfg.MaxPlayers),
		Pool:     make([]string, 0, PoolCap),
		RoundIdx: -1,
		Phase:    PhaseLobby,
	}
}

// NormalizeCode 规范化房间号：去空白并转大写
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// sanitizeName 裁剪昵称：去空白、截断、空值兜底
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	runes := []rune(name)
	if len(runes) > MaxNameLen {
		return string(runes[:MaxNameLen])
	}
	return name
}

// stopTimerLocked 停止并清空一个计时器，可对已停止/已触发的计时器重复调用
func stopTimerLocked(t **time.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

// stopAllTimersLocked 停止房间全部计时器
func (r *Room) stopAllTimersLocked() {
	stopTimerLocked(&r.spawnTimer)
	stopTimerLocked(&r.roundTimer)
	stopTimerLocked(&r.breakTimer)
}
